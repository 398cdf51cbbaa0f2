package models

import "time"

// PropertyModel is the persistence model for listed properties.
type PropertyModel struct {
	ID               uint    `gorm:"primarykey"`
	OwnerID          uint    `gorm:"not null;index"`
	Title            string  `gorm:"not null;size:200"`
	Address          string  `gorm:"not null;size:500"`
	PricePerMonth    float64 `gorm:"not null"`
	AdvanceAmount    float64 `gorm:"not null"`
	ApprovalStatus   string  `gorm:"not null;size:20;index"`
	HasSubscription  bool    `gorm:"not null;default:false"`
	SubscriptionTier string  `gorm:"not null;size:20;default:basic"`
	AssignedStaffID  *uint   `gorm:"index"`
	Condition        string  `gorm:"not null;size:30;default:good"`
	LastInspectionAt *time.Time
	NextInspectionAt *time.Time
	Version          int `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PropertyModel) TableName() string {
	return "properties"
}
