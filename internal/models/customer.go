package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer customer profile holding the spendable wallet balance
type Customer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"balance"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName table name
func (Customer) TableName() string {
	return "customers"
}
