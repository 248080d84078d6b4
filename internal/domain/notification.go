package domain

import "time"

type NotificationType string

const (
	NotifyOrderUpdate   NotificationType = "ORDER_UPDATE"
	NotifyPaymentStatus NotificationType = "PAYMENT_STATUS"
	NotifyNewMessage    NotificationType = "NEW_MESSAGE"
	NotifyDisputeUpdate NotificationType = "DISPUTE_UPDATE"
)

// Notification is the in-app record of a lifecycle event. Delivery over
// other channels happens on the message bus, off the request path.
type Notification struct {
	ID        uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64           `json:"userId" gorm:"not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(32);not null"`
	Content   string           `json:"content" gorm:"not null"`
	RelatedID uint64           `json:"relatedId"`
	Read      bool             `json:"read" gorm:"default:false"`
	CreatedAt time.Time        `json:"createdAt" gorm:"autoCreateTime"`
}

// NotificationEvent is the payload published to the notification exchange.
type NotificationEvent struct {
	UserID    uint64           `json:"userId"`
	Type      NotificationType `json:"type"`
	Content   string           `json:"content"`
	RelatedID uint64           `json:"relatedId"`
	CreatedAt time.Time        `json:"createdAt"`
}
