package domain

import "time"

type ProductListing struct {
	ID                uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	FarmerID          uint64    `json:"farmerId" gorm:"not null;index"`
	CropVarietyID     uint64    `json:"cropVarietyId" gorm:"index"` // zero when uncategorized
	Title             string    `json:"title" gorm:"not null"`
	Description       string    `json:"description"`
	QuantityAvailable float64   `json:"quantityAvailable" gorm:"not null"`
	MinOrderQuantity  float64   `json:"minOrderQuantity" gorm:"not null;default:1"`
	PricePerUnit      float64   `json:"pricePerUnit" gorm:"not null"`
	UnitOfMeasure     string    `json:"unitOfMeasure"`
	Location          string    `json:"location"`
	IsActive          bool      `json:"isActive" gorm:"default:true"`
	AvailableFrom     time.Time `json:"availableFrom"`
	AvailableTo       time.Time `json:"availableTo"`
	CreatedAt         time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ListingFilter is the fixed field set product search filters and sorts over.
type ListingFilter struct {
	Keyword     string  `form:"keyword"`
	Location    string  `form:"location"`
	MinQuantity float64 `form:"minQuantity"`
	MaxQuantity float64 `form:"maxQuantity"`
	MinPrice    float64 `form:"minPrice"`
	MaxPrice    float64 `form:"maxPrice"`
	SortBy      string  `form:"sortBy"` // price | newest
	Page        int     `form:"page"`
	Limit       int     `form:"limit"`
}
