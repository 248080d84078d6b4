package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/infra/paystack"
	"harvestmarket/internal/repository"
)

// webhookMaxAttempts bounds retries of webhook application on transient
// store failures. Signature and payload failures are never retried.
const webhookMaxAttempts = 3

const chargeSuccessEvent = "charge.success"

// toMinorUnits converts a major-unit amount to integer minor units at the
// gateway boundary.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PaymentService orchestrates charge initialization, webhook-driven
// confirmation, escrow release and payout settlement.
type PaymentService struct {
	store    repository.Store
	gateway  paystack.ClientInterface
	notifier Notifier
}

func NewPaymentService(store repository.Store, gateway paystack.ClientInterface, notifier Notifier) *PaymentService {
	return &PaymentService{store: store, gateway: gateway, notifier: notifier}
}

// InitializePayment creates a charge session with the gateway and records
// the PAYMENT transaction carrying its reference. An order's pending
// payment record from placement is upgraded in place rather than
// duplicated, keeping one PAYMENT transaction per charge attempt.
func (s *PaymentService) InitializePayment(ctx context.Context, userID uint64, email string, amountMinor int64, orderID uint64, channels []string) (*paystack.ChargeInit, error) {
	if orderID == 0 {
		return nil, &domain.ValidationError{Field: "orderId", Message: "required"}
	}

	init, err := s.gateway.InitializeCharge(ctx, email, amountMinor, paystack.ChargeMetadata{OrderID: orderID}, channels)
	if err != nil {
		return nil, &domain.GatewayError{Op: "initialize", Err: err}
	}

	amount := float64(amountMinor) / 100
	pending, err := s.store.Transactions().FindPendingPayment(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if pending != nil && pending.GatewayReference == "" {
		pending.Amount = amount
		pending.GatewayReference = init.Reference
		if err := s.store.Transactions().Update(ctx, pending); err != nil {
			return nil, err
		}
	} else {
		err := s.store.Transactions().Create(ctx, &domain.Transaction{
			UserID:           userID,
			OrderID:          orderID,
			Amount:           amount,
			Type:             domain.TxPayment,
			Status:           domain.TxPending,
			GatewayReference: init.Reference,
		})
		if err != nil {
			return nil, err
		}
	}

	return init, nil
}

// InitiateTopUp starts a wallet top-up charge. The wallet owner's user id
// stands in for the order id on the resulting transaction.
func (s *PaymentService) InitiateTopUp(ctx context.Context, userID uint64, email string, amountMinor int64, channels []string) (*paystack.ChargeInit, error) {
	if amountMinor <= 0 {
		return nil, &domain.ValidationError{Field: "amount", Message: "required"}
	}
	init, err := s.gateway.InitializeCharge(ctx, email, amountMinor, paystack.ChargeMetadata{OrderID: userID, Purpose: "wallet"}, channels)
	if err != nil {
		return nil, &domain.GatewayError{Op: "initialize", Err: err}
	}
	err = s.store.Transactions().Create(ctx, &domain.Transaction{
		UserID:           userID,
		OrderID:          userID,
		Amount:           float64(amountMinor) / 100,
		Type:             domain.TxPayment,
		Status:           domain.TxPending,
		GatewayReference: init.Reference,
	})
	if err != nil {
		return nil, err
	}
	return init, nil
}

func (s *PaymentService) VerifyPayment(ctx context.Context, reference string) (*paystack.ChargeStatus, error) {
	if reference == "" {
		return nil, &domain.ValidationError{Field: "reference", Message: "required"}
	}
	status, err := s.gateway.VerifyCharge(ctx, reference)
	if err != nil {
		return nil, &domain.GatewayError{Op: "verify", Err: err}
	}
	return status, nil
}

// CreateRecipient registers the farmer's bank details with the gateway and
// stores the returned recipient code on the farmer profile.
func (s *PaymentService) CreateRecipient(ctx context.Context, userID uint64, accountName, accountNumber, bankCode string) (string, error) {
	farmer, err := s.store.Farmers().FindByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if farmer == nil {
		return "", &domain.NotFoundError{Entity: "farmer profile"}
	}
	code, err := s.gateway.CreateRecipient(ctx, accountName, accountNumber, bankCode)
	if err != nil {
		return "", &domain.GatewayError{Op: "create recipient", Err: err}
	}
	if err := s.store.Farmers().SetRecipientCode(ctx, userID, code); err != nil {
		return "", err
	}
	return code, nil
}

func (s *PaymentService) TransactionHistory(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	return s.store.Transactions().FindByUser(ctx, userID)
}

// WalletBalance returns the user's wallet, creating an empty one on first
// read.
func (s *PaymentService) WalletBalance(ctx context.Context, userID uint64) (*domain.Wallet, error) {
	return s.store.Wallets().FindOrCreate(ctx, userID)
}

// HandleWebhook verifies and applies a gateway webhook. Signature mismatch
// and malformed payloads are rejected outright; only transient store or
// gateway failures are retried, and application is idempotent per gateway
// reference so a redelivered event settles nothing twice.
func (s *PaymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	// One check covers every attempt: the HMAC is computed over rawBody,
	// which never changes within a delivery.
	if !s.gateway.ValidateSignature(rawBody, signature) {
		return &domain.SignatureError{}
	}

	var evt paystack.WebhookEvent
	if err := json.Unmarshal(rawBody, &evt); err != nil {
		return &domain.ValidationError{Field: "payload", Message: "malformed webhook body"}
	}

	if evt.Event != chargeSuccessEvent {
		// Accepted and ignored.
		return nil
	}

	var err error
	for attempt := 1; attempt <= webhookMaxAttempts; attempt++ {
		if err = s.applyChargeSuccess(ctx, &evt.Data); err == nil {
			return nil
		}
		if terminal(err) {
			return err
		}
		log.Printf("webhook attempt %d/%d failed: %v", attempt, webhookMaxAttempts, err)
	}
	return err
}

// terminal reports whether err is a typed domain failure that retrying
// cannot fix. Anything else is treated as transient store I/O. Gateway
// failures are terminal too: a transfer may have executed server-side even
// when the call errored, so the application step must not re-run inside
// this delivery. The gateway's own redelivery is the recovery path.
func terminal(err error) bool {
	switch err.(type) {
	case *domain.ValidationError, *domain.NotFoundError, *domain.SignatureError,
		*domain.ConflictError, *domain.InvalidStateError, *domain.ConfigurationError,
		*domain.InsufficientStockError, *domain.GatewayError:
		return true
	}
	return false
}

func (s *PaymentService) applyChargeSuccess(ctx context.Context, data *paystack.WebhookData) error {
	txn, err := s.store.Transactions().FindPayment(ctx, data.Reference)
	if err != nil {
		return err
	}
	if txn == nil {
		return &domain.NotFoundError{Entity: "payment transaction"}
	}

	alreadyApplied := txn.Status == domain.TxSuccessful
	if !alreadyApplied {
		if err := s.store.Transactions().SetStatusByReference(ctx, data.Reference, domain.TxSuccessful); err != nil {
			return err
		}
	}

	order, err := s.store.Orders().FindByID(ctx, data.Metadata.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		// Wallet top-up: the metadata order id is the wallet owner
		// placeholder. Credit once per confirmed charge; nothing settles.
		if alreadyApplied {
			return nil
		}
		return s.store.Wallets().Credit(ctx, txn.UserID, txn.Amount)
	}

	if order.PaymentStatus != domain.PaymentSuccessful {
		if err := s.store.Orders().SetPaymentStatus(ctx, order.ID, domain.PaymentSuccessful); err != nil {
			return err
		}
		s.notifier.Notify(ctx, order.BuyerID, domain.NotifyPaymentStatus,
			fmt.Sprintf("Payment for order (%d) was successful.", order.ID), order.ID)
	}

	_, err = s.SettleFunds(ctx, order.ID)
	return err
}

// SettleFunds transfers the net payout (total minus commission) to the
// farmer's registered recipient. An existing PAYOUT transaction for the
// order short-circuits without touching the gateway, so settlement happens
// at most once per order.
func (s *PaymentService) SettleFunds(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	existing, err := s.store.Transactions().FindPayout(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Entity: "order"}
	}

	farmer, err := s.store.Farmers().FindByUser(ctx, order.FarmerID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, &domain.NotFoundError{Entity: "farmer profile"}
	}
	if farmer.RecipientCode == "" {
		return nil, &domain.ConfigurationError{Message: "farmer has no payout recipient on file"}
	}

	netMinor := toMinorUnits(order.TotalAmount) - toMinorUnits(order.CommissionFee)
	res, err := s.gateway.Transfer(ctx, farmer.RecipientCode, netMinor, fmt.Sprintf("Payout for order %d", orderID))
	if err != nil {
		return nil, &domain.GatewayError{Op: "transfer", Err: err}
	}

	payout := &domain.Transaction{
		UserID:           order.FarmerID,
		OrderID:          orderID,
		Amount:           float64(netMinor) / 100,
		Type:             domain.TxPayout,
		Status:           domain.TxPending,
		GatewayReference: res.Reference,
	}
	if err := s.store.Transactions().Create(ctx, payout); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, order.FarmerID, domain.NotifyPaymentStatus,
		fmt.Sprintf("Payout initiated for order (%d).", orderID), orderID)

	return payout, nil
}

// ReleaseEscrow is the buyer-confirmation path: the order is marked
// completed and the farmer's payout is settled. Release is rejected unless
// the payment has already succeeded.
func (s *PaymentService) ReleaseEscrow(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Entity: "order"}
	}
	if order.PaymentStatus != domain.PaymentSuccessful {
		return nil, &domain.InvalidStateError{Message: "cannot release escrow before payment succeeds"}
	}

	if err := s.store.Orders().SetStatus(ctx, orderID, domain.OrderCompleted, domain.PaymentSuccessful); err != nil {
		return nil, err
	}

	return s.SettleFunds(ctx, orderID)
}
