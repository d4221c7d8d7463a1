package models

import (
	"time"

	"gorm.io/gorm"
)

// Promo percentage discount code
type Promo struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Code            string         `gorm:"uniqueIndex;not null" json:"code"`
	DiscountPercent Money          `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	Headline        string         `gorm:"type:varchar(200)" json:"headline"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName table name
func (Promo) TableName() string {
	return "promos"
}
