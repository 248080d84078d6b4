package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "OPEN"
	DisputeResolved DisputeStatus = "RESOLVED"
)

type Dispute struct {
	ID              uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         uint64        `json:"orderId" gorm:"not null;index"`
	RaisedByID      uint64        `json:"raisedById" gorm:"not null"`
	Reason          string        `json:"reason"`
	Status          DisputeStatus `json:"status" gorm:"type:varchar(16);default:'OPEN'"`
	ResolutionNotes string        `json:"resolutionNotes"`
	CreatedAt       time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}
