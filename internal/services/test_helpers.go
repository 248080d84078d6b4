package services

import (
	"context"
	"time"

	"harvestmarket/internal/domain"
)

func activeListing(id, farmerID uint64, qty, minQty, price float64) *domain.ProductListing {
	now := time.Now()
	return &domain.ProductListing{
		ID:                id,
		FarmerID:          farmerID,
		Title:             "Test Crop",
		QuantityAvailable: qty,
		MinOrderQuantity:  minQty,
		PricePerUnit:      price,
		UnitOfMeasure:     "kg",
		IsActive:          true,
		AvailableFrom:     now.Add(-24 * time.Hour),
		AvailableTo:       now.Add(24 * time.Hour),
	}
}

// nopNotifier ignores every notification; used where tests do not assert
// notification behavior.
type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, uint64, domain.NotificationType, string, uint64) {}

const (
	testBuyerID   = uint64(10)
	testFarmerID  = uint64(20)
	testListingID = uint64(1)
	testOrderID   = uint64(1)
)
