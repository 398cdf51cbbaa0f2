package models

import "time"

// UserModel is the persistence model for every account role. The staff
// property roster is stored as a JSON array; referential integrity is
// managed by the application, not the database.
type UserModel struct {
	ID                  uint   `gorm:"primarykey"`
	Name                string `gorm:"not null;size:100"`
	Email               string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash        string `gorm:"not null;size:255"`
	Role                string `gorm:"not null;size:20;index"`
	Phone               string `gorm:"size:30"`
	StaffCode           string `gorm:"size:20;index"`
	AssignedPropertyIDs string `gorm:"type:json"`
	Active              bool   `gorm:"not null;default:true"`
	Version             int    `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (UserModel) TableName() string {
	return "users"
}
