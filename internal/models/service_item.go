package models

import "time"

// ServiceItem is an extra-service catalog entry (transfers, insurance, visas).
type ServiceItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // primary key
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`                    // service name
	Description string    `gorm:"type:text;not null" json:"description"`                     // description
	Price       Money     `gorm:"type:decimal(12,2);not null" json:"price"`                  // price
	Category    string    `gorm:"type:varchar(255);default:'Общие услуги'" json:"category"`  // grouping category
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`                        // cover image
	Available   bool      `gorm:"not null" json:"available"`                                 // visible in storefront
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                   // creation time
	UpdatedAt   time.Time `json:"updated_at"`                                                // last update time
}

// TableName sets the table name.
func (ServiceItem) TableName() string {
	return "services"
}
