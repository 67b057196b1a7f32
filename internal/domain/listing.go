package domain

import "time"

type ListingType string

const (
	TypeApartment ListingType = "apartment"
	TypeHouse     ListingType = "house"
	TypeVilla     ListingType = "villa"
	TypeHotel     ListingType = "hotel"
)

func (t ListingType) Valid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeVilla, TypeHotel:
		return true
	}
	return false
}

type Listing struct {
	ID            string      `gorm:"primaryKey;size:24" json:"id"`
	Title         string      `gorm:"size:191;not null" json:"title"`
	Description   string      `gorm:"type:text;not null" json:"description"`
	Location      string      `gorm:"size:191;not null;index" json:"location"`
	Price         float64     `gorm:"not null;index" json:"price"`
	Type          ListingType `gorm:"size:16;not null;index" json:"type"`
	Images        []string    `gorm:"serializer:json" json:"images"`
	AvailableFrom time.Time   `gorm:"not null" json:"availableFrom"`
	AvailableTo   time.Time   `gorm:"not null" json:"availableTo"`
	OwnerID       string      `gorm:"size:24;not null;index" json:"owner"`

	// 房东展示字段的反规范化快照，只为省一次 join，不是权威数据
	OwnerName         string `gorm:"size:64" json:"ownerName,omitempty"`
	OwnerJoinedDate   string `gorm:"size:32" json:"ownerJoinedDate,omitempty"`
	OwnerResponseRate string `gorm:"size:16" json:"ownerResponseRate,omitempty"`
	OwnerResponseTime string `gorm:"size:32" json:"ownerResponseTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Listing) TableName() string { return "listings" }

type ListingSort string

const (
	SortNewest       ListingSort = "newest"
	SortOldest       ListingSort = "oldest"
	SortPriceLowHigh ListingSort = "price_low_high"
	SortPriceHighLow ListingSort = "price_high_low"
)

// ListingFilters 所有条件均可选，缺省即不参与过滤
type ListingFilters struct {
	Keyword   string
	Location  string
	Type      ListingType
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	EndDate   *time.Time
	Sort      ListingSort
}

type ListingRepository interface {
	Create(l *Listing) error
	FindByID(id string) (*Listing, error)
	FindAll() ([]Listing, error)
	FindByOwner(ownerID string) ([]Listing, error)
	Search(f ListingFilters) ([]Listing, error)
	// FindOwned / DeleteOwned 按 id+owner 同时过滤，
	// 零行命中时不区分“不存在”与“不是你的”
	FindOwned(id, ownerID string) (*Listing, error)
	Update(l *Listing) error
	DeleteOwned(id, ownerID string) error
}
