package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"staynest/internal/domain"
)

type ListingRepo struct{ db *gorm.DB }

func NewListingRepo(db *gorm.DB) *ListingRepo { return &ListingRepo{db: db} }

func (r *ListingRepo) Create(l *domain.Listing) error { return r.db.Create(l).Error }

func (r *ListingRepo) FindByID(id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *ListingRepo) FindAll() ([]domain.Listing, error) {
	var out []domain.Listing
	err := r.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (r *ListingRepo) FindByOwner(ownerID string) ([]domain.Listing, error) {
	var out []domain.Listing
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&out).Error
	return out, err
}

// Search 可选谓词 AND 组合，缺省参数完全不进查询
func (r *ListingRepo) Search(f domain.ListingFilters) ([]domain.Listing, error) {
	q := r.db.Model(&domain.Listing{})

	if f.Keyword != "" {
		kw := "%" + strings.ToLower(f.Keyword) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?", kw, kw, kw)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	// 区间相交：只给出一端时只做一半判断
	if f.EndDate != nil {
		q = q.Where("available_from <= ?", *f.EndDate)
	}
	if f.StartDate != nil {
		q = q.Where("available_to >= ?", *f.StartDate)
	}

	switch f.Sort {
	case domain.SortOldest:
		q = q.Order("created_at asc")
	case domain.SortPriceLowHigh:
		q = q.Order("price asc")
	case domain.SortPriceHighLow:
		q = q.Order("price desc")
	default:
		q = q.Order("created_at desc")
	}

	var out []domain.Listing
	err := q.Find(&out).Error
	return out, err
}

func (r *ListingRepo) FindOwned(id, ownerID string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 不区分“不存在”与“归属他人”，避免泄露资源存在性
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepo) Update(l *domain.Listing) error { return r.db.Save(l).Error }

func (r *ListingRepo) DeleteOwned(id, ownerID string) error {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrForbidden
	}
	return nil
}
