package domain

import "time"

type UserRole string

const (
	RoleBuyer  UserRole = "BUYER"
	RoleFarmer UserRole = "FARMER"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(16);default:'BUYER'"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// FarmerProfile carries the payout recipient registered with the payment
// gateway. An empty RecipientCode means no payout destination is on file.
type FarmerProfile struct {
	ID            uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `json:"userId" gorm:"uniqueIndex;not null"`
	FarmName      string    `json:"farmName"`
	RecipientCode string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
