package models

import (
	"time"

	"gorm.io/gorm"
)

// Order order header
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrderNo        string         `gorm:"uniqueIndex;not null" json:"order_no"`
	CustomerID     uint           `gorm:"index;not null" json:"customer_id"`
	PromoID        *uint          `gorm:"index" json:"promo_id,omitempty"`
	Status         string         `gorm:"index;not null" json:"status"`
	Currency       string         `gorm:"not null" json:"currency"`
	OriginalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_amount"`
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	OrderedAt      time.Time      `gorm:"index" json:"ordered_at"`
	DeliveredAt    *time.Time     `gorm:"index" json:"delivered_at,omitempty"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Delivery *Delivery   `gorm:"foreignKey:OrderID" json:"delivery,omitempty"`
}

// TableName table name
func (Order) TableName() string {
	return "orders"
}
