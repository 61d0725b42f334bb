package models

import "time"

// OrderStatusPending is the only status orders are created with.
const OrderStatusPending = "pending"

// Order is an immutable checkout result.
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                     // primary key
	UserID      uint      `gorm:"not null;index" json:"user_id"`                            // buyer
	TotalAmount Money     `gorm:"type:decimal(12,2);not null" json:"total_amount"`          // sum of line totals at creation
	Status      string    `gorm:"type:varchar(32);not null;default:'pending'" json:"status"` // lifecycle status
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                  // checkout time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // order lines
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
