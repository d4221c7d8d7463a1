package models

import (
	"time"

	"gorm.io/gorm"
)

// Product catalog product with price and stock count
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Stock     int            `gorm:"not null;default:0" json:"stock"`
	Category  string         `gorm:"type:varchar(50);index" json:"category"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName table name
func (Product) TableName() string {
	return "products"
}
