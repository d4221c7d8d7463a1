package models

import "time"

// CartItem cart line. The unique index on customer_id enforces the
// single-line-per-customer cart policy at the storage layer. Cart rows
// are deleted for real, so the unique index stays usable after removal.
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_cart_customer" json:"customer_id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName table name
func (CartItem) TableName() string {
	return "cart_items"
}
