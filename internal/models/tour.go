package models

import "time"

// Tour is a domestic tour catalog entry.
type Tour struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                       // primary key
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`                     // tour name
	Description string    `gorm:"type:text;not null" json:"description"`                      // description
	Price       Money     `gorm:"type:decimal(12,2);not null" json:"price"`                   // price per person
	Duration    string    `gorm:"type:varchar(128)" json:"duration"`                          // e.g. "3 дня"
	Destination string    `gorm:"type:varchar(255)" json:"destination"`                       // destination
	Category    string    `gorm:"type:varchar(255);default:'Общие туры'" json:"category"`     // grouping category
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`                         // cover image
	Available   bool      `gorm:"not null" json:"available"`                                  // visible in storefront
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                    // creation time
	UpdatedAt   time.Time `json:"updated_at"`                                                 // last update time
}

// TableName sets the table name.
func (Tour) TableName() string {
	return "tours"
}
