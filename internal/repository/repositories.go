package repository

import (
	"context"

	"harvestmarket/internal/domain"
)

// Store bundles every repository behind one handle so a unit of work can be
// run against either the live connection or an open transaction. WithinTx
// runs fn against a transactional view of the store; any error rolls the
// whole unit back.
type Store interface {
	Users() UserRepository
	Farmers() FarmerRepository
	Catalog() CatalogRepository
	Wallets() WalletRepository
	Listings() ListingRepository
	Orders() OrderRepository
	Transactions() TransactionRepository
	Negotiations() NegotiationRepository
	Disputes() DisputeRepository
	Carts() CartRepository
	SavedSearches() SavedSearchRepository
	Logistics() LogisticsRepository
	Notifications() NotificationRepository
	WithinTx(ctx context.Context, fn func(Store) error) error
}

// Find methods return (nil, nil) when the entity is absent.

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *domain.CropCategory) error
	FindCategory(ctx context.Context, id uint64) (*domain.CropCategory, error)
	Categories(ctx context.Context) ([]domain.CropCategory, error)
	CreateVariety(ctx context.Context, v *domain.CropVariety) error
	FindVariety(ctx context.Context, id uint64) (*domain.CropVariety, error)
	VarietiesByCategory(ctx context.Context, categoryID uint64) ([]domain.CropVariety, error)
}

type WalletRepository interface {
	// FindOrCreate returns the user's wallet, creating an empty one on
	// first read.
	FindOrCreate(ctx context.Context, userID uint64) (*domain.Wallet, error)
	Credit(ctx context.Context, userID uint64, amount float64) error
}

type FarmerRepository interface {
	Create(ctx context.Context, p *domain.FarmerProfile) error
	FindByUser(ctx context.Context, userID uint64) (*domain.FarmerProfile, error)
	SetRecipientCode(ctx context.Context, userID uint64, code string) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *domain.ProductListing) error
	FindByID(ctx context.Context, id uint64) (*domain.ProductListing, error)
	Update(ctx context.Context, l *domain.ProductListing) error
	Delete(ctx context.Context, id uint64) error
	SetActive(ctx context.Context, id uint64, active bool) error
	Search(ctx context.Context, f domain.ListingFilter) ([]domain.ProductListing, error)
	// DecrementStock atomically subtracts qty where quantity_available >= qty.
	// It reports false when the guard fails, leaving stock untouched.
	DecrementStock(ctx context.Context, id uint64, qty float64) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByBuyer(ctx context.Context, buyerID uint64) ([]domain.Order, error)
	FindByFarmer(ctx context.Context, farmerID uint64) ([]domain.Order, error)
	SetPaymentStatus(ctx context.Context, id uint64, status domain.PaymentStatus) error
	SetStatus(ctx context.Context, id uint64, status domain.OrderStatus, payment domain.PaymentStatus) error
	SetLogisticsType(ctx context.Context, id uint64, t domain.LogisticsType) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	Update(ctx context.Context, t *domain.Transaction) error
	FindPayment(ctx context.Context, reference string) (*domain.Transaction, error)
	FindPendingPayment(ctx context.Context, orderID uint64) (*domain.Transaction, error)
	FindSuccessfulPayment(ctx context.Context, orderID uint64) (*domain.Transaction, error)
	FindPayout(ctx context.Context, orderID uint64) (*domain.Transaction, error)
	FindByUser(ctx context.Context, userID uint64) ([]domain.Transaction, error)
	SetStatusByReference(ctx context.Context, reference string, status domain.TransactionStatus) error
}

type NegotiationRepository interface {
	Create(ctx context.Context, s *domain.NegotiationSession) error
	FindByOrder(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error)
	FindActiveByOrder(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error)
	AppendMessage(ctx context.Context, sessionID uint64, m *domain.NegotiationMessage) error
	SetStatus(ctx context.Context, sessionID uint64, status domain.NegotiationStatus) error
}

type DisputeRepository interface {
	Create(ctx context.Context, d *domain.Dispute) error
	FindByID(ctx context.Context, id uint64) (*domain.Dispute, error)
	Update(ctx context.Context, d *domain.Dispute) error
}

type CartRepository interface {
	AddItem(ctx context.Context, item *domain.CartItem) error
	ItemsByBuyer(ctx context.Context, buyerID uint64) ([]domain.CartItem, error)
	Clear(ctx context.Context, buyerID uint64) error
}

type SavedSearchRepository interface {
	Create(ctx context.Context, s *domain.SavedSearch) error
	FindByUser(ctx context.Context, userID uint64) ([]domain.SavedSearch, error)
}

type LogisticsRepository interface {
	Create(ctx context.Context, a *domain.LogisticsAssignment) error
	FindByID(ctx context.Context, id uint64) (*domain.LogisticsAssignment, error)
	Update(ctx context.Context, a *domain.LogisticsAssignment) error
	FindByPartner(ctx context.Context, partnerID uint64) ([]domain.LogisticsAssignment, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	FindByUser(ctx context.Context, userID uint64) ([]domain.Notification, error)
}
