package models

import "time"

// Hotel is a hotel catalog entry.
type Hotel struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                    // primary key
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`                  // hotel name
	Description string    `gorm:"type:text;not null" json:"description"`                   // description
	Price       Money     `gorm:"type:decimal(12,2);not null" json:"price"`                // price per night
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`              // city / district
	Stars       int       `gorm:"default:0" json:"stars"`                                  // star rating
	Category    string    `gorm:"type:varchar(255);default:'Общие отели'" json:"category"` // grouping category
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`                      // cover image
	Available   bool      `gorm:"not null" json:"available"`                               // visible in storefront
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                 // creation time
	UpdatedAt   time.Time `json:"updated_at"`                                              // last update time
}

// TableName sets the table name.
func (Hotel) TableName() string {
	return "hotels"
}
