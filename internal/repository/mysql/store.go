package mysql

import (
	"context"

	"harvestmarket/internal/repository"

	"gorm.io/gorm"
)

// Store is the GORM-backed repository.Store. WithinTx hands callers a Store
// bound to the open transaction, so every repository obtained inside the
// closure shares one atomic unit of work.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() repository.UserRepository                 { return &userRepo{db: s.db} }
func (s *Store) Farmers() repository.FarmerRepository             { return &farmerRepo{db: s.db} }
func (s *Store) Catalog() repository.CatalogRepository            { return &catalogRepo{db: s.db} }
func (s *Store) Wallets() repository.WalletRepository             { return &walletRepo{db: s.db} }
func (s *Store) Listings() repository.ListingRepository           { return &listingRepo{db: s.db} }
func (s *Store) Orders() repository.OrderRepository               { return &orderRepo{db: s.db} }
func (s *Store) Transactions() repository.TransactionRepository   { return &transactionRepo{db: s.db} }
func (s *Store) Negotiations() repository.NegotiationRepository   { return &negotiationRepo{db: s.db} }
func (s *Store) Disputes() repository.DisputeRepository           { return &disputeRepo{db: s.db} }
func (s *Store) Carts() repository.CartRepository                 { return &cartRepo{db: s.db} }
func (s *Store) SavedSearches() repository.SavedSearchRepository  { return &savedSearchRepo{db: s.db} }
func (s *Store) Logistics() repository.LogisticsRepository        { return &logisticsRepo{db: s.db} }
func (s *Store) Notifications() repository.NotificationRepository { return &notificationRepo{db: s.db} }

func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
