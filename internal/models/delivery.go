package models

import (
	"time"

	"gorm.io/gorm"
)

// Delivery delivery record linking one order to one courier.
// The unique index on order_id backs the double-assignment guard.
type Delivery struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OrderID     uint           `gorm:"uniqueIndex;not null" json:"order_id"`
	CourierID   uint           `gorm:"index;not null" json:"courier_id"`
	Status      string         `gorm:"index;not null" json:"status"`
	Address     string         `gorm:"type:text" json:"address"`
	AssignedAt  time.Time      `gorm:"index" json:"assigned_at"`
	DeliveredAt *time.Time     `gorm:"index" json:"delivered_at,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Courier *Courier `gorm:"foreignKey:CourierID" json:"courier,omitempty"`
}

// TableName table name
func (Delivery) TableName() string {
	return "deliveries"
}
