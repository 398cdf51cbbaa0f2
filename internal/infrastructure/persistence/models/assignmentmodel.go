package models

import "time"

// AssignmentModel is the persistence model for staff assignments. The
// exclusive-insert query in the repository relies on the status column to
// enforce at most one non-terminal assignment per property.
type AssignmentModel struct {
	ID                  uint      `gorm:"primarykey"`
	StaffID             uint      `gorm:"not null;index"`
	PropertyID          uint      `gorm:"not null;index"`
	AssignedByAdminID   uint      `gorm:"not null"`
	Status              string    `gorm:"not null;size:20;index"`
	InspectionFrequency string    `gorm:"not null;size:20"`
	NextInspectionAt    time.Time `gorm:"not null"`
	LastInspectionAt    *time.Time
	Description         string `gorm:"size:1000"`
	Instructions        string `gorm:"size:1000"`
	StaffNotes          string `gorm:"size:1000"`
	CompletedDate       *time.Time
	Version             int `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (AssignmentModel) TableName() string {
	return "staff_assignments"
}
