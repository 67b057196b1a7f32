package domain

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

type Review struct {
	ID        string       `gorm:"primaryKey;size:24" json:"id"`
	Title     string       `gorm:"size:191;not null" json:"title"`
	Comment   string       `gorm:"type:text;not null" json:"comment"`
	Rating    int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Status    ReviewStatus `gorm:"size:16;not null;default:pending" json:"status"`
	UserID    string       `gorm:"size:24;not null;index" json:"userId"`
	ListingID string       `gorm:"size:24;not null;index" json:"listingId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (Review) TableName() string { return "reviews" }

type ReviewFilters struct {
	ListingID string
	Search    string
	Sort      string // newest / oldest / rating
	Order     string // asc / desc
	Page      int
	Limit     int
}

type ReviewRepository interface {
	Create(r *Review) error
	FindByID(id string) (*Review, error)
	List(f ReviewFilters) ([]Review, Pagination, error)
	FindOwned(id, userID string) (*Review, error)
	Update(r *Review) error
	DeleteOwned(id, userID string) error
}
