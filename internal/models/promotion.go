package models

import "time"

// Promotion is a discount campaign entry.
type Promotion struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                     // primary key
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`                  // campaign title
	Description     string    `gorm:"type:text;not null" json:"description"`                    // description
	DiscountPercent int       `gorm:"not null" json:"discount_percent"`                         // discount size, percent
	ValidUntil      string    `gorm:"type:varchar(64)" json:"valid_until"`                      // expiry, display string
	Category        string    `gorm:"type:varchar(255);default:'Общие акции'" json:"category"`  // grouping category
	ImageURL        string    `gorm:"type:varchar(500)" json:"image_url"`                       // cover image
	Active          bool      `gorm:"not null" json:"active"`                                   // visible in storefront
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                  // creation time
	UpdatedAt       time.Time `json:"updated_at"`                                               // last update time
}

// TableName sets the table name.
func (Promotion) TableName() string {
	return "promotions"
}
