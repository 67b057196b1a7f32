package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"staynest/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) Create(b *domain.Booking) error { return r.db.Create(b).Error }

func (r *BookingRepo) FindByID(id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookingRepo) FindByGuest(guestID string, f domain.BookingFilters) ([]domain.Booking, domain.Pagination, error) {
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

	q := r.db.Model(&domain.Booking{}).Where("guest_id = ?", guestID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, err
	}

	var out []domain.Booking
	err := q.Order("created_at desc").
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

// HasOverlap 半开区间 [from,to)：退房日等于入住日不算冲突
func (r *BookingRepo) HasOverlap(listingID string, from, to time.Time, excludeID string) (bool, error) {
	q := r.db.Model(&domain.Booking{}).
		Where("listing_id = ? AND status <> ?", listingID, domain.BookingCancelled).
		Where("date_from < ? AND date_to > ?", to, from)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *BookingRepo) FindOwned(id, guestID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.Where("id = ? AND guest_id = ?", id, guestID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) Update(b *domain.Booking) error { return r.db.Save(b).Error }

func (r *BookingRepo) DeleteOwned(id, guestID string) error {
	res := r.db.Where("id = ? AND guest_id = ?", id, guestID).Delete(&domain.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrForbidden
	}
	return nil
}
