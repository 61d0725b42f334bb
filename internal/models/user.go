package models

import "time"

// User is a storefront customer account.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                    // primary key
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`       // login email, unique
	PasswordHash string    `gorm:"not null" json:"-"`                       // bcrypt hash
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`  // display name
	Phone        string    `gorm:"type:varchar(64)" json:"phone"`           // contact phone, optional
	BonusPoints  int       `gorm:"not null;default:0" json:"bonus_points"`  // loyalty balance
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                 // registration time
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
