package models

import "time"

// MaintenanceTicketModel is the persistence model for maintenance tickets.
type MaintenanceTicketModel struct {
	ID              uint   `gorm:"primarykey"`
	PropertyID      uint   `gorm:"not null;index"`
	RequestedByID   uint   `gorm:"not null;index"`
	AssignedStaffID *uint  `gorm:"index"`
	Kind            string `gorm:"not null;size:20"`
	Priority        string `gorm:"not null;size:20"`
	Status          string `gorm:"not null;size:20;index"`
	Title           string `gorm:"not null;size:200"`
	Description     string `gorm:"not null;size:2000"`
	ScheduledDate   *time.Time
	EstimatedCost   float64 `gorm:"not null;default:0"`
	ActualCost      float64 `gorm:"not null;default:0"`
	CompletionNotes string  `gorm:"size:2000"`
	CompletedAt     *time.Time
	Feedback        string `gorm:"size:1000"`
	Rating          int    `gorm:"not null;default:0"`
	Version         int    `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (MaintenanceTicketModel) TableName() string {
	return "maintenance_tickets"
}
