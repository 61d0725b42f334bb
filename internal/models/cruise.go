package models

import "time"

// Cruise is a cruise catalog entry.
type Cruise struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // primary key
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`                    // cruise name
	Description string    `gorm:"type:text;not null" json:"description"`                     // description
	Price       Money     `gorm:"type:decimal(12,2);not null" json:"price"`                  // price per person
	Departure   string    `gorm:"type:varchar(255);not null" json:"departure"`               // departure port
	Duration    string    `gorm:"type:varchar(128)" json:"duration"`                         // e.g. "5 дней"
	Destination string    `gorm:"type:varchar(255)" json:"destination"`                      // route / destination
	Category    string    `gorm:"type:varchar(255);default:'Общие круизы'" json:"category"`  // grouping category
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`                        // cover image
	Available   bool      `gorm:"not null" json:"available"`                                 // visible in storefront
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                   // creation time
	UpdatedAt   time.Time `json:"updated_at"`                                                // last update time
}

// TableName sets the table name.
func (Cruise) TableName() string {
	return "cruises"
}
