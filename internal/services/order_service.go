package services

import (
	"context"
	"fmt"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"
)

// OrderService owns order creation, quantity reservation and status
// transitions.
type OrderService struct {
	store    repository.Store
	notifier Notifier
}

func NewOrderService(store repository.Store, notifier Notifier) *OrderService {
	return &OrderService{store: store, notifier: notifier}
}

// PlaceOrder admits an order against a listing. The order, its item, the
// inventory decrement and the initial pending payment record are committed
// in one store transaction; a failure at any step leaves no trace. The
// conditional decrement serializes concurrent orders on the same listing so
// quantityAvailable never goes negative.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID, listingID uint64, quantity float64, deliveryAddressID uint64, logisticsType domain.LogisticsType) (*domain.Order, error) {
	if !logisticsType.Valid() {
		return nil, &domain.ValidationError{Field: "logisticsType", Message: "unrecognized logistics option"}
	}
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "must be positive"}
	}

	var order *domain.Order
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		listing, err := tx.Listings().FindByID(ctx, listingID)
		if err != nil {
			return err
		}
		if listing == nil || !listing.IsActive {
			return &domain.NotFoundError{Entity: "product listing"}
		}
		if quantity < listing.MinOrderQuantity {
			return &domain.ValidationError{
				Field:   "quantity",
				Message: fmt.Sprintf("below minimum order quantity %g", listing.MinOrderQuantity),
			}
		}

		ok, err := tx.Listings().DecrementStock(ctx, listingID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.InsufficientStockError{ListingID: listingID, Requested: quantity}
		}

		totalAmount := quantity * listing.PricePerUnit
		commissionFee := totalAmount * domain.CommissionRate
		order = &domain.Order{
			BuyerID:           buyerID,
			FarmerID:          listing.FarmerID,
			TotalAmount:       totalAmount,
			CommissionFee:     commissionFee,
			FinalAmount:       totalAmount + commissionFee,
			DeliveryAddressID: deliveryAddressID,
			LogisticsType:     logisticsType,
			Status:            domain.OrderPending,
			PaymentStatus:     domain.PaymentPending,
			Items: []domain.OrderItem{{
				ProductListingID:   listingID,
				Quantity:           quantity,
				UnitOfMeasure:      listing.UnitOfMeasure,
				PriceAtTimeOfOrder: listing.PricePerUnit,
			}},
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		return tx.Transactions().Create(ctx, &domain.Transaction{
			UserID:  buyerID,
			OrderID: order.ID,
			Amount:  order.FinalAmount,
			Type:    domain.TxPayment,
			Status:  domain.TxPending,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, order.FarmerID, domain.NotifyOrderUpdate,
		fmt.Sprintf("You have a new order (%d).", order.ID), order.ID)

	return order, nil
}

func (s *OrderService) GetOrderSummary(ctx context.Context, orderID uint64) (*domain.Order, error) {
	o, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &domain.NotFoundError{Entity: "order"}
	}
	return o, nil
}

func (s *OrderService) BuyerOrderHistory(ctx context.Context, buyerID uint64) ([]domain.Order, error) {
	return s.store.Orders().FindByBuyer(ctx, buyerID)
}

func (s *OrderService) FarmerOrderHistory(ctx context.Context, farmerID uint64) ([]domain.Order, error) {
	return s.store.Orders().FindByFarmer(ctx, farmerID)
}

func (s *OrderService) SetLogisticsPreference(ctx context.Context, orderID uint64, logisticsType domain.LogisticsType) error {
	if !logisticsType.Valid() {
		return &domain.ValidationError{Field: "logisticsType", Message: "unrecognized logistics option"}
	}
	o, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return &domain.NotFoundError{Entity: "order"}
	}
	return s.store.Orders().SetLogisticsType(ctx, orderID, logisticsType)
}

func (s *OrderService) AddToCart(ctx context.Context, buyerID, listingID uint64, quantity float64) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "must be positive"}
	}
	listing, err := s.store.Listings().FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || !listing.IsActive {
		return nil, &domain.NotFoundError{Entity: "product listing"}
	}
	item := &domain.CartItem{
		BuyerID:          buyerID,
		ProductListingID: listingID,
		Quantity:         quantity,
	}
	if err := s.store.Carts().AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *OrderService) GetCart(ctx context.Context, buyerID uint64) ([]domain.CartItem, error) {
	return s.store.Carts().ItemsByBuyer(ctx, buyerID)
}

// Checkout places one order per cart item, then clears the cart. Items are
// processed in insertion order; the first failure aborts the remainder and
// is returned with the orders placed so far.
func (s *OrderService) Checkout(ctx context.Context, buyerID, deliveryAddressID uint64, logisticsType domain.LogisticsType) ([]domain.Order, error) {
	items, err := s.store.Carts().ItemsByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &domain.ValidationError{Field: "cart", Message: "cart is empty"}
	}

	var placed []domain.Order
	for _, item := range items {
		order, err := s.PlaceOrder(ctx, buyerID, item.ProductListingID, item.Quantity, deliveryAddressID, logisticsType)
		if err != nil {
			return placed, err
		}
		placed = append(placed, *order)
	}

	if err := s.store.Carts().Clear(ctx, buyerID); err != nil {
		return placed, err
	}
	return placed, nil
}
