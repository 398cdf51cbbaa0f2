package models

import "time"

// BookingModel is the persistence model for tenancy requests. Support
// tickets have no identity outside their booking and are stored as a JSON
// array on the row.
type BookingModel struct {
	ID             uint      `gorm:"primarykey"`
	PropertyID     uint      `gorm:"not null;index"`
	TenantID       uint      `gorm:"not null;index"`
	ContactName    string    `gorm:"not null;size:100"`
	ContactEmail   string    `gorm:"not null;size:255"`
	ContactPhone   string    `gorm:"not null;size:30"`
	StartDate      time.Time `gorm:"not null"`
	Message        string    `gorm:"size:1000"`
	TermsAccepted  bool      `gorm:"not null"`
	Status         string    `gorm:"not null;size:30;index"`
	PaymentStatus  string    `gorm:"not null;size:20"`
	AdvanceAmount  float64   `gorm:"not null"`
	PaymentMethod  string    `gorm:"size:30"`
	TransactionID  string    `gorm:"size:100"`
	SupportTickets string    `gorm:"type:json"`
	Version        int       `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (BookingModel) TableName() string {
	return "bookings"
}
