package domain

import "time"

type NegotiationStatus string

const (
	NegotiationActive   NegotiationStatus = "ACTIVE"
	NegotiationAccepted NegotiationStatus = "ACCEPTED"
	NegotiationRejected NegotiationStatus = "REJECTED"
)

func (s NegotiationStatus) Valid() bool {
	switch s {
	case NegotiationActive, NegotiationAccepted, NegotiationRejected:
		return true
	}
	return false
}

// Terminal reports whether the session can no longer be mutated.
func (s NegotiationStatus) Terminal() bool {
	return s == NegotiationAccepted || s == NegotiationRejected
}

// NegotiationSession is a per-order message thread. At most one active
// session exists per order.
type NegotiationSession struct {
	ID        uint64               `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64               `json:"orderId" gorm:"not null;index"`
	Status    NegotiationStatus    `json:"status" gorm:"type:varchar(16);default:'ACTIVE'"`
	Messages  []NegotiationMessage `json:"messages"`
	CreatedAt time.Time            `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time            `json:"updatedAt" gorm:"autoUpdateTime"`
}

// NegotiationMessage entries are append-only, ordered by Position.
type NegotiationMessage struct {
	ID                   uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	NegotiationSessionID uint64    `json:"sessionId" gorm:"not null;index"`
	SenderID             uint64    `json:"senderId" gorm:"not null"`
	Message              string    `json:"message" gorm:"not null"`
	Position             int       `json:"position" gorm:"not null"`
	CreatedAt            time.Time `json:"timestamp" gorm:"autoCreateTime"`
}
