package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"staynest/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(rv *domain.Review) error { return r.db.Create(rv).Error }

func (r *ReviewRepo) FindByID(id string) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.First(&rv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rv, err
}

func (r *ReviewRepo) List(f domain.ReviewFilters) ([]domain.Review, domain.Pagination, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}

	q := r.db.Model(&domain.Review{})
	if f.ListingID != "" {
		q = q.Where("listing_id = ?", f.ListingID)
	}
	if f.Search != "" {
		kw := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(comment) LIKE ?", kw, kw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, err
	}

	col := "created_at"
	switch f.Sort {
	case "rating":
		col = "rating"
	case "oldest":
		col = "created_at"
		if f.Order == "" {
			f.Order = "asc"
		}
	}
	dir := "desc"
	if strings.EqualFold(f.Order, "asc") {
		dir = "asc"
	}

	var out []domain.Review
	err := q.Order(col + " " + dir).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	p := domain.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int((total + int64(limit) - 1) / int64(limit)),
	}
	return out, p, nil
}

func (r *ReviewRepo) FindOwned(id, userID string) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepo) Update(rv *domain.Review) error { return r.db.Save(rv).Error }

func (r *ReviewRepo) DeleteOwned(id, userID string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrForbidden
	}
	return nil
}
