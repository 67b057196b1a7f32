package service

import (
	"context"
	"fmt"

	"staynest/internal/domain"
)

type Review struct {
	reviews  domain.ReviewRepository
	listings domain.ListingRepository
}

func NewReview(reviews domain.ReviewRepository, listings domain.ListingRepository) *Review {
	return &Review{reviews: reviews, listings: listings}
}

type ReviewInput struct {
	Title     string `json:"title"`
	Comment   string `json:"comment"`
	Rating    *int   `json:"rating"`
	ListingID string `json:"listingId"`
}

func (in *ReviewInput) validate() error {
	if in.Title == "" || in.Comment == "" || in.Rating == nil {
		return fmt.Errorf("%w: title, comment and rating are required", domain.ErrValidation)
	}
	if *in.Rating < 1 || *in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	return nil
}

// Create 作者强制为调用者；不校验其是否真的住过该房源
func (s *Review) Create(ctx context.Context, userID string, in ReviewInput) (*domain.Review, error) {
	if !domain.ValidID(in.ListingID) {
		return nil, domain.ErrInvalidID
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	listing, err := s.listings.FindByID(in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: listing", domain.ErrNotFound)
	}

	r := &domain.Review{
		ID:        domain.NewID(),
		Title:     in.Title,
		Comment:   in.Comment,
		Rating:    *in.Rating,
		Status:    domain.ReviewPending,
		UserID:    userID,
		ListingID: in.ListingID,
	}
	if err := s.reviews.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Review) List(ctx context.Context, f domain.ReviewFilters) ([]domain.Review, domain.Pagination, error) {
	if f.ListingID != "" && !domain.ValidID(f.ListingID) {
		return nil, domain.Pagination{}, domain.ErrInvalidID
	}
	return s.reviews.List(f)
}

func (s *Review) Get(ctx context.Context, id string) (*domain.Review, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	r, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

type ReviewUpdate struct {
	Title   string `json:"title"`
	Comment string `json:"comment"`
	Rating  *int   `json:"rating"`
}

func (s *Review) Update(ctx context.Context, id, userID string, in ReviewUpdate) (*domain.Review, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}

	r, err := s.reviews.FindOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		r.Title = in.Title
	}
	if in.Comment != "" {
		r.Comment = in.Comment
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
		}
		r.Rating = *in.Rating
	}

	if err := s.reviews.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Review) Delete(ctx context.Context, id, userID string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidID
	}
	return s.reviews.DeleteOwned(id, userID)
}
