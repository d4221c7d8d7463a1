package models

import (
	"time"

	"gorm.io/gorm"
)

// Courier courier profile with vehicle data
type Courier struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	VehicleType  string         `gorm:"type:varchar(20);not null" json:"vehicle_type"`
	VehiclePlate string         `gorm:"type:varchar(20);not null" json:"vehicle_plate"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName table name
func (Courier) TableName() string {
	return "couriers"
}
