package service

import (
	"context"
	"fmt"
	"time"

	"staynest/internal/core/cache"
	"staynest/internal/domain"
)

const (
	listingCacheTTL = 30 * time.Second
	allListingsKey  = "listings:all"
)

type Listing struct {
	listings domain.ListingRepository
	users    domain.UserRepository
	cache    *cache.Cache // nil 时直接回源
}

func NewListing(listings domain.ListingRepository, users domain.UserRepository, c *cache.Cache) *Listing {
	return &Listing{listings: listings, users: users, cache: c}
}

// ListingInput PUT 与 POST 共用，整体替换语义
type ListingInput struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	Price         *float64           `json:"price"`
	Type          domain.ListingType `json:"type"`
	Images        []string           `json:"images"`
	AvailableFrom *time.Time         `json:"availableFrom"`
	AvailableTo   *time.Time         `json:"availableTo"`
}

func (in *ListingInput) validate() error {
	if in.Title == "" || in.Description == "" || in.Location == "" ||
		in.Price == nil || in.AvailableFrom == nil || in.AvailableTo == nil {
		return fmt.Errorf("%w: title, description, location, price and availability window are required", domain.ErrValidation)
	}
	if *in.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: type must be one of apartment, house, villa, hotel", domain.ErrValidation)
	}
	if in.AvailableFrom.After(*in.AvailableTo) {
		return fmt.Errorf("%w: availableFrom must not be after availableTo", domain.ErrValidation)
	}
	return nil
}

// Create 忽略请求里的任何 owner 字段，归属强制为调用者
func (s *Listing) Create(ctx context.Context, ownerID string, in ListingInput) (*domain.Listing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	l := &domain.Listing{
		ID:            domain.NewID(),
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		Price:         *in.Price,
		Type:          in.Type,
		Images:        in.Images,
		AvailableFrom: *in.AvailableFrom,
		AvailableTo:   *in.AvailableTo,
		OwnerID:       ownerID,
	}
	s.snapshotOwner(l)

	if err := s.listings.Create(l); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, allListingsKey)
	return l, nil
}

func (s *Listing) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	l, err := cache.GetOrLoadJSON(s.cache, ctx, "listing:"+id, listingCacheTTL,
		func(context.Context) (*domain.Listing, error) {
			got, e := s.listings.FindByID(id)
			if e != nil {
				return nil, e
			}
			if got == nil {
				return nil, domain.ErrNotFound
			}
			return got, nil
		})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Listing) ListMine(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	return s.listings.FindByOwner(ownerID)
}

func (s *Listing) ListAll(ctx context.Context) ([]domain.Listing, error) {
	out, err := cache.GetOrLoadJSON(s.cache, ctx, allListingsKey, listingCacheTTL,
		func(context.Context) (*[]domain.Listing, error) {
			all, e := s.listings.FindAll()
			if e != nil {
				return nil, e
			}
			return &all, nil
		})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []domain.Listing{}, nil
	}
	return *out, nil
}

func (s *Listing) Search(ctx context.Context, f domain.ListingFilters) ([]domain.Listing, error) {
	return s.listings.Search(f)
}

func (s *Listing) Update(ctx context.Context, id, ownerID string, in ListingInput) (*domain.Listing, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	l, err := s.listings.FindOwned(id, ownerID)
	if err != nil {
		return nil, err
	}

	l.Title = in.Title
	l.Description = in.Description
	l.Location = in.Location
	l.Price = *in.Price
	l.Type = in.Type
	l.Images = in.Images
	l.AvailableFrom = *in.AvailableFrom
	l.AvailableTo = *in.AvailableTo
	s.snapshotOwner(l)

	if err := s.listings.Update(l); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, allListingsKey, "listing:"+id)
	return l, nil
}

func (s *Listing) Delete(ctx context.Context, id, ownerID string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidID
	}
	if err := s.listings.DeleteOwned(id, ownerID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, allListingsKey, "listing:"+id)
	return nil
}

// snapshotOwner 刷新反规范化的房东展示字段；查不到就保持为空，
// 这些字段只是读优化，不影响归属判定
func (s *Listing) snapshotOwner(l *domain.Listing) {
	u, err := s.users.FindByID(l.OwnerID)
	if err != nil || u == nil {
		return
	}
	l.OwnerName = u.Name
	l.OwnerJoinedDate = u.CreatedAt.Format("January 2006")
	l.OwnerResponseRate = "100%"
	l.OwnerResponseTime = "within an hour"
}
