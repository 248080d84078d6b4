package domain

import "time"

// CartItem is a typed cart entry, one row per listing a buyer intends to
// order. Checkout turns each entry into an order and clears the cart.
type CartItem struct {
	ID               uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	BuyerID          uint64    `json:"buyerId" gorm:"not null;index"`
	ProductListingID uint64    `json:"productListingId" gorm:"not null"`
	Quantity         float64   `json:"quantity" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// SavedSearch persists a buyer's search filter under a name.
type SavedSearch struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `json:"userId" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Keyword     string    `json:"keyword"`
	Location    string    `json:"location"`
	MinPrice    float64   `json:"minPrice"`
	MaxPrice    float64   `json:"maxPrice"`
	MinQuantity float64   `json:"minQuantity"`
	MaxQuantity float64   `json:"maxQuantity"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
