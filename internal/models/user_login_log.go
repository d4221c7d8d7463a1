package models

import "time"

// UserLoginLog records login attempts for auditing.
type UserLoginLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	Email      string    `gorm:"index;not null" json:"email"`
	Status     string    `gorm:"index;not null" json:"status"`
	FailReason string    `gorm:"index" json:"fail_reason"`
	ClientIP   string    `gorm:"type:varchar(64);index" json:"client_ip"`
	UserAgent  string    `gorm:"type:text" json:"user_agent"`
	RequestID  string    `gorm:"type:varchar(64);index" json:"request_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName table name
func (UserLoginLog) TableName() string {
	return "user_login_logs"
}
