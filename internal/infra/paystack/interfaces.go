package paystack

import "context"

type ClientInterface interface {
	InitializeCharge(ctx context.Context, email string, amountMinor int64, metadata ChargeMetadata, channels []string) (*ChargeInit, error)
	VerifyCharge(ctx context.Context, reference string) (*ChargeStatus, error)
	CreateRecipient(ctx context.Context, accountName, accountNumber, bankCode string) (string, error)
	Transfer(ctx context.Context, recipientCode string, amountMinor int64, reason string) (*TransferResult, error)
	Refund(ctx context.Context, reference string) (*RefundResult, error)
	ValidateSignature(body []byte, signature string) bool
}

var _ ClientInterface = (*Client)(nil)
