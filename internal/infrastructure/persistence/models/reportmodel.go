package models

import "time"

// ReportModel is the persistence model for inspection reports.
type ReportModel struct {
	ID                     uint   `gorm:"primarykey"`
	AssignmentID           uint   `gorm:"not null;index"`
	PropertyID             uint   `gorm:"not null;index"`
	StaffID                uint   `gorm:"not null;index"`
	Condition              string `gorm:"not null;size:30"`
	Notes                  string `gorm:"not null;size:2000"`
	MaintenanceRecommended bool   `gorm:"not null;default:false"`
	MaintenanceDetails     string `gorm:"size:2000"`
	Status                 string `gorm:"not null;size:20;index"`
	ReviewedByAdminID      *uint
	ReviewedAt             *time.Time
	ForwardedToOwnerID     *uint `gorm:"index"`
	ForwardedAt            *time.Time
	Acknowledged           bool `gorm:"not null;default:false"`
	AcknowledgedAt         *time.Time
	SubmittedAt            time.Time `gorm:"not null"`
	Version                int       `gorm:"not null;default:1"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (ReportModel) TableName() string {
	return "inspection_reports"
}
