package models

import "time"

// SubscriptionModel is the persistence model for property subscriptions.
type SubscriptionModel struct {
	ID            uint      `gorm:"primarykey"`
	PropertyID    uint      `gorm:"not null;index"`
	OwnerID       uint      `gorm:"not null;index"`
	Tier          string    `gorm:"not null;size:20"`
	Status        string    `gorm:"not null;size:20;index"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`
	Amount        float64   `gorm:"not null"`
	PaymentMethod string    `gorm:"size:30"`
	TransactionID string    `gorm:"size:100"`
	AutoRenew     bool      `gorm:"not null;default:false"`
	CancelledAt   *time.Time
	Version       int `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
