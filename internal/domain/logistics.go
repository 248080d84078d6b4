package domain

import "time"

type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "ASSIGNED"
	AssignmentAccepted  AssignmentStatus = "ACCEPTED"
	AssignmentPickedUp  AssignmentStatus = "PICKED_UP"
	AssignmentInTransit AssignmentStatus = "IN_TRANSIT"
	AssignmentDelivered AssignmentStatus = "DELIVERED"
)

// ValidTransitionTarget reports whether a partner may move an assignment to s.
// ASSIGNED is only ever set at creation.
func (s AssignmentStatus) ValidTransitionTarget() bool {
	switch s {
	case AssignmentAccepted, AssignmentPickedUp, AssignmentInTransit, AssignmentDelivered:
		return true
	}
	return false
}

type LogisticsAssignment struct {
	ID                 uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID            uint64           `json:"orderId" gorm:"not null;index"`
	LogisticsPartnerID uint64           `json:"logisticsPartnerId" gorm:"not null;index"`
	Status             AssignmentStatus `json:"status" gorm:"type:varchar(16);default:'ASSIGNED'"`
	TrackingCode       string           `json:"trackingCode"`
	CreatedAt          time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time        `json:"updatedAt" gorm:"autoUpdateTime"`
}
