package models

import (
	"time"

	"gorm.io/gorm"
)

// User base identity for admin, customer and courier accounts
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FullName     string         `gorm:"not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Phone        string         `gorm:"type:varchar(20)" json:"phone"`
	Address      string         `gorm:"type:text" json:"address"`
	Role         string         `gorm:"type:varchar(20);index;not null;default:'customer'" json:"role"`
	Status       string         `gorm:"default:'active'" json:"status"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName table name
func (User) TableName() string {
	return "users"
}
