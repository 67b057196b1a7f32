package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// CanTransition 显式状态机：pending→confirmed、pending→cancelled、
// confirmed→cancelled，其余一律拒绝
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	if s == to {
		return true
	}
	switch s {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCancelled
	}
	return false
}

type DateRange struct {
	From time.Time `gorm:"not null" json:"from"`
	To   time.Time `gorm:"not null" json:"to"`
}

type Booking struct {
	ID        string `gorm:"primaryKey;size:24" json:"id"`
	ListingID string `gorm:"size:24;not null;index" json:"listingId"`
	// HostID 创建时从 listing.owner 拷贝，之后不再跟随房源易主
	HostID     string        `gorm:"size:24;not null;index" json:"hostId"`
	GuestID    string        `gorm:"size:24;not null;index" json:"guestId"`
	Dates      DateRange     `gorm:"embedded;embeddedPrefix:date_" json:"dates"`
	TotalPrice float64       `gorm:"not null" json:"totalPrice"`
	Guests     int           `gorm:"not null;default:1" json:"guests"`
	Status     BookingStatus `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func (Booking) TableName() string { return "bookings" }

type BookingFilters struct {
	Status BookingStatus
	Page   int
	Limit  int
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type BookingRepository interface {
	Create(b *Booking) error
	FindByID(id string) (*Booking, error)
	FindByGuest(guestID string, f BookingFilters) ([]Booking, Pagination, error)
	// HasOverlap 同一房源上是否存在与 [from,to) 相交的未取消预订；
	// 改期时传自身 ID 排除，避免和旧日期自撞
	HasOverlap(listingID string, from, to time.Time, excludeID string) (bool, error)
	FindOwned(id, guestID string) (*Booking, error)
	Update(b *Booking) error
	DeleteOwned(id, guestID string) error
}
