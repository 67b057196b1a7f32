package service

import (
	"context"
	"fmt"
	"time"

	"staynest/internal/domain"
)

type Booking struct {
	bookings domain.BookingRepository
	listings domain.ListingRepository
}

func NewBooking(bookings domain.BookingRepository, listings domain.ListingRepository) *Booking {
	return &Booking{bookings: bookings, listings: listings}
}

type BookingDates struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

type BookingInput struct {
	ListingID  string               `json:"listingId"`
	Dates      BookingDates         `json:"dates"`
	TotalPrice *float64             `json:"totalPrice"`
	Guests     int                  `json:"guests"`
	Status     domain.BookingStatus `json:"status"`
}

// Create 以创建时刻的房源 owner 作为 hostId 快照；
// 同一房源上与未取消预订重叠的日期直接拒绝
func (s *Booking) Create(ctx context.Context, guestID string, in BookingInput) (*domain.Booking, error) {
	if !domain.ValidID(in.ListingID) {
		return nil, domain.ErrInvalidID
	}
	if in.Dates.From == nil || in.Dates.To == nil || in.TotalPrice == nil {
		return nil, fmt.Errorf("%w: dates.from, dates.to and totalPrice are required", domain.ErrValidation)
	}
	if !in.Dates.From.Before(*in.Dates.To) {
		return nil, fmt.Errorf("%w: dates.from must be before dates.to", domain.ErrValidation)
	}
	if *in.TotalPrice <= 0 {
		return nil, fmt.Errorf("%w: totalPrice must be positive", domain.ErrValidation)
	}
	guests := in.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", domain.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = domain.BookingPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be pending, confirmed or cancelled", domain.ErrValidation)
	}

	listing, err := s.listings.FindByID(in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: listing", domain.ErrNotFound)
	}

	overlap, err := s.bookings.HasOverlap(in.ListingID, *in.Dates.From, *in.Dates.To, "")
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrConflict
	}

	b := &domain.Booking{
		ID:         domain.NewID(),
		ListingID:  in.ListingID,
		HostID:     listing.OwnerID,
		GuestID:    guestID,
		Dates:      domain.DateRange{From: *in.Dates.From, To: *in.Dates.To},
		TotalPrice: *in.TotalPrice,
		Guests:     guests,
		Status:     status,
	}
	if err := s.bookings.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Booking) ListMine(ctx context.Context, guestID string, f domain.BookingFilters) ([]domain.Booking, domain.Pagination, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.Pagination{}, fmt.Errorf("%w: unknown status filter", domain.ErrValidation)
	}
	return s.bookings.FindByGuest(guestID, f)
}

func (s *Booking) Get(ctx context.Context, id string) (*domain.Booking, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	b, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

type BookingUpdate struct {
	Dates      *BookingDates        `json:"dates"`
	TotalPrice *float64             `json:"totalPrice"`
	Guests     *int                 `json:"guests"`
	Status     domain.BookingStatus `json:"status"`
}

// Update 只有下单客人可改；状态走显式状态机，
// 日期/人数/价格只在 pending 状态下可调整
func (s *Booking) Update(ctx context.Context, id, guestID string, in BookingUpdate) (*domain.Booking, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}

	b, err := s.bookings.FindOwned(id, guestID)
	if err != nil {
		return nil, err
	}

	if in.Dates != nil || in.TotalPrice != nil || in.Guests != nil {
		if b.Status != domain.BookingPending {
			return nil, fmt.Errorf("%w: only pending bookings can be rescheduled", domain.ErrValidation)
		}
		if in.Dates != nil {
			if in.Dates.From == nil || in.Dates.To == nil || !in.Dates.From.Before(*in.Dates.To) {
				return nil, fmt.Errorf("%w: dates.from must be before dates.to", domain.ErrValidation)
			}
			// 改期同样要过重叠检查，排除自身旧日期
			overlap, err := s.bookings.HasOverlap(b.ListingID, *in.Dates.From, *in.Dates.To, b.ID)
			if err != nil {
				return nil, err
			}
			if overlap {
				return nil, domain.ErrConflict
			}
			b.Dates = domain.DateRange{From: *in.Dates.From, To: *in.Dates.To}
		}
		if in.TotalPrice != nil {
			if *in.TotalPrice <= 0 {
				return nil, fmt.Errorf("%w: totalPrice must be positive", domain.ErrValidation)
			}
			b.TotalPrice = *in.TotalPrice
		}
		if in.Guests != nil {
			if *in.Guests < 1 {
				return nil, fmt.Errorf("%w: guests must be at least 1", domain.ErrValidation)
			}
			b.Guests = *in.Guests
		}
	}

	if in.Status != "" {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: status must be pending, confirmed or cancelled", domain.ErrValidation)
		}
		if !b.Status.CanTransition(in.Status) {
			return nil, fmt.Errorf("%w: cannot transition booking from %s to %s", domain.ErrValidation, b.Status, in.Status)
		}
		b.Status = in.Status
	}

	if err := s.bookings.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Booking) Delete(ctx context.Context, id, guestID string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidID
	}
	return s.bookings.DeleteOwned(id, guestID)
}
