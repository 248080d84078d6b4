package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

type LogisticsType string

const (
	FarmerDelivery  LogisticsType = "FARMER_DELIVERY"
	PlatformPartner LogisticsType = "PLATFORM_PARTNER"
	BuyerPickup     LogisticsType = "BUYER_PICKUP"
)

func (t LogisticsType) Valid() bool {
	switch t {
	case FarmerDelivery, PlatformPartner, BuyerPickup:
		return true
	}
	return false
}

// CommissionRate is the platform's cut of every order, applied once at
// order creation and never recomputed.
const CommissionRate = 0.05

type Order struct {
	ID                uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	BuyerID           uint64        `json:"buyerId" gorm:"not null;index"`
	FarmerID          uint64        `json:"farmerId" gorm:"not null;index"`
	TotalAmount       float64       `json:"totalAmount" gorm:"not null"`
	CommissionFee     float64       `json:"commissionFee" gorm:"not null"`
	FinalAmount       float64       `json:"finalAmount" gorm:"not null"`
	DeliveryAddressID uint64        `json:"deliveryAddressId"`
	LogisticsType     LogisticsType `json:"logisticsType" gorm:"type:varchar(32)"`
	Status            OrderStatus   `json:"status" gorm:"type:varchar(16);default:'PENDING'"`
	PaymentStatus     PaymentStatus `json:"paymentStatus" gorm:"type:varchar(16);default:'PENDING'"`
	Items             []OrderItem   `json:"items"`
	CreatedAt         time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Counterparty returns the other party on the order relative to userID.
func (o *Order) Counterparty(userID uint64) uint64 {
	if userID == o.BuyerID {
		return o.FarmerID
	}
	return o.BuyerID
}

// OrderItem snapshots the listing's price at order time; the snapshot is
// immutable even if the listing is repriced later.
type OrderItem struct {
	ID                 uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID            uint64  `json:"orderId" gorm:"not null;index"`
	ProductListingID   uint64  `json:"productListingId" gorm:"not null"`
	Quantity           float64 `json:"quantity" gorm:"not null"`
	UnitOfMeasure      string  `json:"unitOfMeasure"`
	PriceAtTimeOfOrder float64 `json:"priceAtTimeOfOrder" gorm:"not null"`
}
