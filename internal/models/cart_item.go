package models

import "time"

// CartItem is one line in a user's cart. Display fields are snapshots taken
// at add time; item_id/item_type is a weak reference across the catalog
// tables, not a foreign key.
type CartItem struct {
	ID          uint        `gorm:"primarykey" json:"id"`                        // primary key
	UserID      uint        `gorm:"not null;index" json:"user_id"`               // owner
	ItemID      uint        `gorm:"not null" json:"item_id"`                     // catalog row id
	ItemType    string      `gorm:"type:varchar(32);not null" json:"item_type"`  // tour / hotel / foreign_tour / cruise / service
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`      // display name snapshot
	Description string      `gorm:"type:text" json:"description"`                // description snapshot
	Price       Money       `gorm:"type:decimal(12,2);not null" json:"price"`    // unit price snapshot
	Quantity    int         `gorm:"not null;default:1" json:"quantity"`          // line quantity
	Duration    string      `gorm:"type:varchar(128)" json:"duration"`           // display extra
	Destination string      `gorm:"type:varchar(255)" json:"destination"`        // display extra
	Capacity    string      `gorm:"type:varchar(128)" json:"capacity"`           // display extra
	Features    StringArray `gorm:"type:text" json:"features"`                   // display extra, JSON text
	Country     string      `gorm:"type:varchar(255)" json:"country"`            // display extra
	Highlights  StringArray `gorm:"type:text" json:"highlights"`                 // display extra, JSON text
	Departure   string      `gorm:"type:varchar(255)" json:"departure"`          // display extra
	AddedAt     time.Time   `gorm:"index" json:"added_at"`                       // add time, drives list ordering
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart"
}
