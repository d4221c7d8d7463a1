package models

import "time"

// BalanceTransaction ledger entry recorded for every balance change.
// Reference is unique and makes order debits idempotent.
type BalanceTransaction struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CustomerID    uint      `gorm:"index;not null" json:"customer_id"`
	Type          string    `gorm:"type:varchar(30);index;not null" json:"type"`
	Direction     string    `gorm:"type:varchar(10);not null" json:"direction"`
	Amount        Money     `gorm:"type:decimal(20,2);not null" json:"amount"`
	BalanceBefore Money     `gorm:"type:decimal(20,2);not null" json:"balance_before"`
	BalanceAfter  Money     `gorm:"type:decimal(20,2);not null" json:"balance_after"`
	Reference     string    `gorm:"uniqueIndex;not null" json:"reference"`
	Remark        string    `gorm:"type:varchar(200)" json:"remark"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

// TableName table name
func (BalanceTransaction) TableName() string {
	return "balance_transactions"
}
