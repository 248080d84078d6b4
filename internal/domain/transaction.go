package domain

import "time"

type TransactionType string

const (
	TxPayment TransactionType = "PAYMENT"
	TxRefund  TransactionType = "REFUND"
	TxPayout  TransactionType = "PAYOUT"
)

type TransactionStatus string

const (
	TxPending    TransactionStatus = "PENDING"
	TxSuccessful TransactionStatus = "SUCCESSFUL"
	TxFailed     TransactionStatus = "FAILED"
)

// Transaction is a financial record, immutable once settled. Amount is in
// major currency units; the gateway boundary works in minor units.
// For wallet top-ups OrderID carries the wallet owner's user id.
type Transaction struct {
	ID               uint64            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           uint64            `json:"userId" gorm:"not null;index"`
	OrderID          uint64            `json:"orderId" gorm:"index"`
	Amount           float64           `json:"amount" gorm:"not null"`
	Type             TransactionType   `json:"type" gorm:"type:varchar(16);not null"`
	Status           TransactionStatus `json:"status" gorm:"type:varchar(16);default:'PENDING'"`
	GatewayReference string            `json:"gatewayReference" gorm:"index"`
	CreatedAt        time.Time         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time         `json:"updatedAt" gorm:"autoUpdateTime"`
}
