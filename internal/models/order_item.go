package models

// OrderItem is one line of an order, snapshotted from the cart at checkout.
type OrderItem struct {
	ID       uint   `gorm:"primarykey" json:"id"`                        // primary key
	OrderID  uint   `gorm:"not null;index" json:"order_id"`              // owning order
	ItemID   uint   `gorm:"not null" json:"item_id"`                     // catalog row id
	ItemType string `gorm:"type:varchar(32);not null" json:"item_type"`  // catalog kind
	Name     string `gorm:"type:varchar(255);not null" json:"name"`      // display name snapshot
	Quantity int    `gorm:"not null" json:"quantity"`                    // quantity
	Price    Money  `gorm:"type:decimal(12,2);not null" json:"price"`    // unit price snapshot
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
