package models

import "time"

// Admin is a back-office administrator account.
type Admin struct {
	ID           uint      `gorm:"primarykey" json:"id"`                 // primary key
	Username     string    `gorm:"uniqueIndex;not null" json:"username"` // login name, unique
	PasswordHash string    `gorm:"not null" json:"-"`                    // bcrypt hash
	CreatedAt    time.Time `gorm:"index" json:"created_at"`              // creation time
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}
