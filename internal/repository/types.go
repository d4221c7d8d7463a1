package repository

import "time"

// ProductListFilter filter for product listings
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	OnlyActive bool
	InStock    bool
}

// OrderListFilter filter for order listings
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter filter for user listings
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Role        string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// BalanceTransactionListFilter filter for ledger entries
type BalanceTransactionListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Type        string
	Direction   string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DeliveryListFilter filter for delivery listings
type DeliveryListFilter struct {
	Page      int
	PageSize  int
	CourierID uint
	OrderID   uint
	Status    string
}

// PromoListFilter filter for promo listings
type PromoListFilter struct {
	Page     int
	PageSize int
	Code     string
	IsActive *bool
}

// UserLoginLogListFilter filter for login log listings
type UserLoginLogListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Email       string
	Status      string
	FailReason  string
	ClientIP    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
