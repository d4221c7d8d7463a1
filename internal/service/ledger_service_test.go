package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupLedgerServiceTest(t *testing.T) (*LedgerService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:ledger_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.BalanceTransaction{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	customerRepo := repository.NewCustomerRepository(db)
	return NewLedgerService(customerRepo, 10000), db
}

func createLedgerCustomer(t *testing.T, db *gorm.DB, userID uint, balance decimal.Decimal) *models.Customer {
	t.Helper()
	user := models.User{
		ID:           userID,
		FullName:     fmt.Sprintf("Customer %d", userID),
		Email:        fmt.Sprintf("ledger_user_%d@example.com", userID),
		PasswordHash: "hash",
		Role:         constants.RoleCustomer,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	customer := models.Customer{
		UserID:  user.ID,
		Balance: models.NewMoneyFromDecimal(balance),
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return &customer
}

func TestLedgerServiceTopUp(t *testing.T) {
	svc, db := setupLedgerServiceTest(t)
	customer := createLedgerCustomer(t, db, 201, decimal.Zero)

	account, txn, err := svc.TopUp(TopUpInput{
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(25000),
		Remark:     "isi saldo",
	})
	if err != nil {
		t.Fatalf("top up failed: %v", err)
	}
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("unexpected balance: %s", account.Balance.String())
	}
	if txn == nil || txn.Type != constants.BalanceTxnTypeTopUp || txn.Direction != constants.BalanceTxnDirectionIn {
		t.Fatalf("unexpected transaction: %+v", txn)
	}
	if !txn.BalanceBefore.Decimal.IsZero() || !txn.BalanceAfter.Decimal.Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("unexpected before/after: %s -> %s", txn.BalanceBefore.String(), txn.BalanceAfter.String())
	}
}

func TestLedgerServiceTopUpBelowMinimum(t *testing.T) {
	svc, db := setupLedgerServiceTest(t)
	customer := createLedgerCustomer(t, db, 202, decimal.Zero)

	_, _, err := svc.TopUp(TopUpInput{
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(5000),
	})
	if !errors.Is(err, ErrTopUpBelowMinimum) {
		t.Fatalf("expected top up below minimum, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.BalanceTransaction{}).Count(&count).Error; err != nil {
		t.Fatalf("count transactions failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no transactions, got %d", count)
	}
}

func TestLedgerServiceAdminAdjustInsufficient(t *testing.T) {
	svc, db := setupLedgerServiceTest(t)
	customer := createLedgerCustomer(t, db, 203, decimal.NewFromInt(10000))

	_, _, err := svc.AdminAdjust(AdjustInput{
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(-20000),
		Remark:     "koreksi",
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got: %v", err)
	}

	account, err := svc.GetAccount(customer.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("balance changed after rejected adjustment: %s", account.Balance.String())
	}
}

func TestLedgerServiceAdminAdjustNegative(t *testing.T) {
	svc, db := setupLedgerServiceTest(t)
	customer := createLedgerCustomer(t, db, 204, decimal.NewFromInt(50000))

	account, txn, err := svc.AdminAdjust(AdjustInput{
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(-15000),
	})
	if err != nil {
		t.Fatalf("admin adjust failed: %v", err)
	}
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(35000)) {
		t.Fatalf("unexpected balance: %s", account.Balance.String())
	}
	if txn.Type != constants.BalanceTxnTypeAdminAdjust || txn.Direction != constants.BalanceTxnDirectionOut {
		t.Fatalf("unexpected transaction: %+v", txn)
	}
}

func TestLedgerServiceDebitForOrderIdempotent(t *testing.T) {
	svc, db := setupLedgerServiceTest(t)
	customer := createLedgerCustomer(t, db, 205, decimal.NewFromInt(50000))

	order := &models.Order{
		OrderNo:     "JM20260101120000123456",
		CustomerID:  customer.ID,
		Status:      constants.OrderStatusPending,
		Currency:    "IDR",
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(40000)),
		OrderedAt:   time.Now(),
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	var first, second *models.BalanceTransaction
	if err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		first, err = svc.DebitForOrder(tx, customer.ID, decimal.NewFromInt(40000), order)
		return err
	}); err != nil {
		t.Fatalf("first debit failed: %v", err)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		second, err = svc.DebitForOrder(tx, customer.ID, decimal.NewFromInt(40000), order)
		return err
	}); err != nil {
		t.Fatalf("second debit failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the same transaction, got %d and %d", first.ID, second.ID)
	}
	account, err := svc.GetAccount(customer.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected single debit, balance: %s", account.Balance.String())
	}
}
