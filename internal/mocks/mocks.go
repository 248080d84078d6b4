package mocks

import (
	"context"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/infra/paystack"
	"harvestmarket/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStore aggregates one mock per repository. WithinTx runs the unit of
// work against the same mocks, so expectations set on them cover both
// transactional and non-transactional calls.
type MockStore struct {
	mock.Mock
	UsersRepo         *MockUserRepository
	FarmersRepo       *MockFarmerRepository
	CatalogRepo       *MockCatalogRepository
	WalletsRepo       *MockWalletRepository
	ListingsRepo      *MockListingRepository
	OrdersRepo        *MockOrderRepository
	TransactionsRepo  *MockTransactionRepository
	NegotiationsRepo  *MockNegotiationRepository
	DisputesRepo      *MockDisputeRepository
	CartsRepo         *MockCartRepository
	SavedSearchesRepo *MockSavedSearchRepository
	LogisticsRepo     *MockLogisticsRepository
	NotificationsRepo *MockNotificationRepository
}

func NewMockStore() *MockStore {
	return &MockStore{
		UsersRepo:         new(MockUserRepository),
		FarmersRepo:       new(MockFarmerRepository),
		CatalogRepo:       new(MockCatalogRepository),
		WalletsRepo:       new(MockWalletRepository),
		ListingsRepo:      new(MockListingRepository),
		OrdersRepo:        new(MockOrderRepository),
		TransactionsRepo:  new(MockTransactionRepository),
		NegotiationsRepo:  new(MockNegotiationRepository),
		DisputesRepo:      new(MockDisputeRepository),
		CartsRepo:         new(MockCartRepository),
		SavedSearchesRepo: new(MockSavedSearchRepository),
		LogisticsRepo:     new(MockLogisticsRepository),
		NotificationsRepo: new(MockNotificationRepository),
	}
}

func (m *MockStore) Users() repository.UserRepository                 { return m.UsersRepo }
func (m *MockStore) Farmers() repository.FarmerRepository             { return m.FarmersRepo }
func (m *MockStore) Catalog() repository.CatalogRepository            { return m.CatalogRepo }
func (m *MockStore) Wallets() repository.WalletRepository             { return m.WalletsRepo }
func (m *MockStore) Listings() repository.ListingRepository           { return m.ListingsRepo }
func (m *MockStore) Orders() repository.OrderRepository               { return m.OrdersRepo }
func (m *MockStore) Transactions() repository.TransactionRepository   { return m.TransactionsRepo }
func (m *MockStore) Negotiations() repository.NegotiationRepository   { return m.NegotiationsRepo }
func (m *MockStore) Disputes() repository.DisputeRepository           { return m.DisputesRepo }
func (m *MockStore) Carts() repository.CartRepository                 { return m.CartsRepo }
func (m *MockStore) SavedSearches() repository.SavedSearchRepository  { return m.SavedSearchesRepo }
func (m *MockStore) Logistics() repository.LogisticsRepository        { return m.LogisticsRepo }
func (m *MockStore) Notifications() repository.NotificationRepository { return m.NotificationsRepo }

func (m *MockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(m)
}

func (m *MockStore) AssertExpectations(t mock.TestingT) bool {
	ok := true
	for _, sub := range []interface{ AssertExpectations(mock.TestingT) bool }{
		m.UsersRepo, m.FarmersRepo, m.CatalogRepo, m.WalletsRepo,
		m.ListingsRepo, m.OrdersRepo,
		m.TransactionsRepo, m.NegotiationsRepo, m.DisputesRepo,
		m.CartsRepo, m.SavedSearchesRepo, m.LogisticsRepo, m.NotificationsRepo,
	} {
		if !sub.AssertExpectations(t) {
			ok = false
		}
	}
	return ok
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockFarmerRepository struct {
	mock.Mock
}

func (m *MockFarmerRepository) Create(ctx context.Context, p *domain.FarmerProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockFarmerRepository) FindByUser(ctx context.Context, userID uint64) (*domain.FarmerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmerProfile), args.Error(1)
}

func (m *MockFarmerRepository) SetRecipientCode(ctx context.Context, userID uint64, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateCategory(ctx context.Context, c *domain.CropCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindCategory(ctx context.Context, id uint64) (*domain.CropCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CropCategory), args.Error(1)
}

func (m *MockCatalogRepository) Categories(ctx context.Context) ([]domain.CropCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CropCategory), args.Error(1)
}

func (m *MockCatalogRepository) CreateVariety(ctx context.Context, v *domain.CropVariety) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindVariety(ctx context.Context, id uint64) (*domain.CropVariety, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CropVariety), args.Error(1)
}

func (m *MockCatalogRepository) VarietiesByCategory(ctx context.Context, categoryID uint64) ([]domain.CropVariety, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CropVariety), args.Error(1)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindOrCreate(ctx context.Context, userID uint64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Credit(ctx context.Context, userID uint64, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, l *domain.ProductListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uint64) (*domain.ProductListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductListing), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, l *domain.ProductListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) SetActive(ctx context.Context, id uint64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockListingRepository) Search(ctx context.Context, f domain.ListingFilter) ([]domain.ProductListing, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductListing), args.Error(1)
}

func (m *MockListingRepository) DecrementStock(ctx context.Context, id uint64, qty float64) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, buyerID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByFarmer(ctx context.Context, farmerID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SetPaymentStatus(ctx context.Context, id uint64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) SetStatus(ctx context.Context, id uint64, status domain.OrderStatus, payment domain.PaymentStatus) error {
	args := m.Called(ctx, id, status, payment)
	return args.Error(0)
}

func (m *MockOrderRepository) SetLogisticsType(ctx context.Context, id uint64, t domain.LogisticsType) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindPayment(ctx context.Context, reference string) (*domain.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindPendingPayment(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindSuccessfulPayment(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindPayout(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByUser(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SetStatusByReference(ctx context.Context, reference string, status domain.TransactionStatus) error {
	args := m.Called(ctx, reference, status)
	return args.Error(0)
}

type MockNegotiationRepository struct {
	mock.Mock
}

func (m *MockNegotiationRepository) Create(ctx context.Context, s *domain.NegotiationSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockNegotiationRepository) FindByOrder(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NegotiationSession), args.Error(1)
}

func (m *MockNegotiationRepository) FindActiveByOrder(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NegotiationSession), args.Error(1)
}

func (m *MockNegotiationRepository) AppendMessage(ctx context.Context, sessionID uint64, msg *domain.NegotiationMessage) error {
	args := m.Called(ctx, sessionID, msg)
	return args.Error(0)
}

func (m *MockNegotiationRepository) SetStatus(ctx context.Context, sessionID uint64, status domain.NegotiationStatus) error {
	args := m.Called(ctx, sessionID, status)
	return args.Error(0)
}

type MockDisputeRepository struct {
	mock.Mock
}

func (m *MockDisputeRepository) Create(ctx context.Context, d *domain.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) FindByID(ctx context.Context, id uint64) (*domain.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) Update(ctx context.Context, d *domain.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) ItemsByBuyer(ctx context.Context, buyerID uint64) ([]domain.CartItem, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, buyerID uint64) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}

type MockSavedSearchRepository struct {
	mock.Mock
}

func (m *MockSavedSearchRepository) Create(ctx context.Context, s *domain.SavedSearch) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSavedSearchRepository) FindByUser(ctx context.Context, userID uint64) ([]domain.SavedSearch, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}

type MockLogisticsRepository struct {
	mock.Mock
}

func (m *MockLogisticsRepository) Create(ctx context.Context, a *domain.LogisticsAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockLogisticsRepository) FindByID(ctx context.Context, id uint64) (*domain.LogisticsAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LogisticsAssignment), args.Error(1)
}

func (m *MockLogisticsRepository) Update(ctx context.Context, a *domain.LogisticsAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockLogisticsRepository) FindByPartner(ctx context.Context, partnerID uint64) ([]domain.LogisticsAssignment, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogisticsAssignment), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByUser(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) InitializeCharge(ctx context.Context, email string, amountMinor int64, metadata paystack.ChargeMetadata, channels []string) (*paystack.ChargeInit, error) {
	args := m.Called(ctx, email, amountMinor, metadata, channels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.ChargeInit), args.Error(1)
}

func (m *MockGatewayClient) VerifyCharge(ctx context.Context, reference string) (*paystack.ChargeStatus, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.ChargeStatus), args.Error(1)
}

func (m *MockGatewayClient) CreateRecipient(ctx context.Context, accountName, accountNumber, bankCode string) (string, error) {
	args := m.Called(ctx, accountName, accountNumber, bankCode)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayClient) Transfer(ctx context.Context, recipientCode string, amountMinor int64, reason string) (*paystack.TransferResult, error) {
	args := m.Called(ctx, recipientCode, amountMinor, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.TransferResult), args.Error(1)
}

func (m *MockGatewayClient) Refund(ctx context.Context, reference string) (*paystack.RefundResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.RefundResult), args.Error(1)
}

func (m *MockGatewayClient) ValidateSignature(body []byte, signature string) bool {
	args := m.Called(body, signature)
	return args.Bool(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID uint64, typ domain.NotificationType, content string, relatedID uint64) {
	m.Called(ctx, userID, typ, content, relatedID)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data interface{}) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
