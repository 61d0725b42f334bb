package models

import "time"

// ForeignTour is an international tour catalog entry.
type ForeignTour struct {
	ID          uint        `gorm:"primarykey" json:"id"`                                               // primary key
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`                             // tour name
	Description string      `gorm:"type:text;not null" json:"description"`                              // description
	Price       Money       `gorm:"type:decimal(12,2);not null" json:"price"`                           // price per person
	Country     string      `gorm:"type:varchar(255);not null" json:"country"`                          // destination country
	Duration    string      `gorm:"type:varchar(128)" json:"duration"`                                  // e.g. "7 дней"
	Highlights  StringArray `gorm:"type:text" json:"highlights"`                                        // selling points, JSON text
	TourType    string      `gorm:"type:varchar(128)" json:"tour_type"`                                 // e.g. beach / excursion
	Category    string      `gorm:"type:varchar(255);default:'Общие зарубежные туры'" json:"category"`  // grouping category
	ImageURL    string      `gorm:"type:varchar(500)" json:"image_url"`                                 // cover image
	Available   bool        `gorm:"not null" json:"available"`                                          // visible in storefront
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`                                            // creation time
	UpdatedAt   time.Time   `json:"updated_at"`                                                         // last update time
}

// TableName sets the table name.
func (ForeignTour) TableName() string {
	return "foreign_tours"
}
