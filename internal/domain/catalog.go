package domain

import "time"

// CropCategory groups varieties in the crop taxonomy listings reference.
type CropCategory struct {
	ID          uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string        `json:"name" gorm:"uniqueIndex;not null"`
	Description string        `json:"description"`
	Varieties   []CropVariety `json:"varieties,omitempty" gorm:"foreignKey:CropCategoryID"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"autoCreateTime"`
}

type CropVariety struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CropCategoryID uint64    `json:"cropCategoryId" gorm:"not null;index"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
