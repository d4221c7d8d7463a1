package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerService customer balance bookkeeping. Every balance change runs
// inside a transaction with the customer row locked and leaves a
// BalanceTransaction entry behind.
type LedgerService struct {
	customerRepo repository.CustomerRepository
	topUpMinimum decimal.Decimal
}

// NewLedgerService creates the ledger service
func NewLedgerService(customerRepo repository.CustomerRepository, topUpMinimum float64) *LedgerService {
	minimum := decimal.NewFromFloat(topUpMinimum)
	if minimum.LessThanOrEqual(decimal.Zero) {
		minimum = decimal.NewFromInt(10000)
	}
	return &LedgerService{
		customerRepo: customerRepo,
		topUpMinimum: minimum,
	}
}

// TopUpInput top up request
type TopUpInput struct {
	CustomerID uint
	Amount     decimal.Decimal
	Remark     string
}

// AdjustInput admin balance adjustment request. Amount may be negative.
type AdjustInput struct {
	CustomerID uint
	Amount     decimal.Decimal
	Remark     string
}

// GetAccount fetches a customer's account
func (s *LedgerService) GetAccount(customerID uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// GetAccountByUser fetches the account linked to a user
func (s *LedgerService) GetAccountByUser(userID uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// TopUp credits the customer's balance. Amounts below the configured
// minimum are rejected before any write happens.
func (s *LedgerService) TopUp(input TopUpInput) (*models.Customer, *models.BalanceTransaction, error) {
	amount := input.Amount.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}
	if amount.LessThan(s.topUpMinimum) {
		return nil, nil, ErrTopUpBelowMinimum
	}
	reference := buildLedgerReference(constants.BalanceTxnTypeTopUp, input.CustomerID)
	return s.changeBalance(input.CustomerID, amount, constants.BalanceTxnDirectionIn,
		constants.BalanceTxnTypeTopUp, reference, cleanLedgerRemark(input.Remark, "balance top up"))
}

// AdminAdjust applies a signed admin adjustment to the balance
func (s *LedgerService) AdminAdjust(input AdjustInput) (*models.Customer, *models.BalanceTransaction, error) {
	amount := input.Amount.Round(2)
	if amount.IsZero() {
		return nil, nil, ErrInvalidAmount
	}
	direction := constants.BalanceTxnDirectionIn
	if amount.IsNegative() {
		direction = constants.BalanceTxnDirectionOut
		amount = amount.Neg()
	}
	reference := buildLedgerReference(constants.BalanceTxnTypeAdminAdjust, input.CustomerID)
	return s.changeBalance(input.CustomerID, amount, direction,
		constants.BalanceTxnTypeAdminAdjust, reference, cleanLedgerRemark(input.Remark, "admin adjustment"))
}

// DebitForOrder deducts an order total inside the caller's transaction.
// The reference is derived from the order, so a retried checkout cannot
// double-charge.
func (s *LedgerService) DebitForOrder(tx *gorm.DB, customerID uint, amount decimal.Decimal, order *models.Order) (*models.BalanceTransaction, error) {
	if tx == nil || order == nil {
		return nil, ErrOrderNotFound
	}
	amount = amount.Round(2)
	if amount.LessThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	reference := buildOrderLedgerReference(order.OrderNo, constants.BalanceTxnTypeOrderPay)
	repo := s.customerRepo.WithTx(tx)

	existing, err := repo.GetTransactionByReference(reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	account, err := repo.GetByIDForUpdate(customerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrCustomerNotFound
	}

	before := account.Balance.Decimal.Round(2)
	after := before.Sub(amount).Round(2)
	if after.LessThan(decimal.Zero) {
		return nil, ErrInsufficientBalance
	}

	now := time.Now()
	account.Balance = models.NewMoneyFromDecimal(after)
	account.UpdatedAt = now
	if err := repo.Update(account); err != nil {
		return nil, err
	}

	txn := &models.BalanceTransaction{
		CustomerID:    customerID,
		Type:          constants.BalanceTxnTypeOrderPay,
		Direction:     constants.BalanceTxnDirectionOut,
		Amount:        models.NewMoneyFromDecimal(amount),
		BalanceBefore: models.NewMoneyFromDecimal(before),
		BalanceAfter:  models.NewMoneyFromDecimal(after),
		Reference:     reference,
		Remark:        fmt.Sprintf("payment for order %s", order.OrderNo),
		CreatedAt:     now,
	}
	if err := repo.CreateTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// CreditForOrder returns an order total to the balance inside the
// caller's transaction, idempotent per order.
func (s *LedgerService) CreditForOrder(tx *gorm.DB, customerID uint, amount decimal.Decimal, order *models.Order, remark string) (*models.BalanceTransaction, error) {
	if tx == nil || order == nil {
		return nil, ErrOrderNotFound
	}
	amount = amount.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	reference := buildOrderLedgerReference(order.OrderNo, constants.BalanceTxnTypeOrderRefund)
	repo := s.customerRepo.WithTx(tx)

	existing, err := repo.GetTransactionByReference(reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	account, err := repo.GetByIDForUpdate(customerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrCustomerNotFound
	}

	now := time.Now()
	before := account.Balance.Decimal.Round(2)
	after := before.Add(amount).Round(2)
	account.Balance = models.NewMoneyFromDecimal(after)
	account.UpdatedAt = now
	if err := repo.Update(account); err != nil {
		return nil, err
	}

	txn := &models.BalanceTransaction{
		CustomerID:    customerID,
		Type:          constants.BalanceTxnTypeOrderRefund,
		Direction:     constants.BalanceTxnDirectionIn,
		Amount:        models.NewMoneyFromDecimal(amount),
		BalanceBefore: models.NewMoneyFromDecimal(before),
		BalanceAfter:  models.NewMoneyFromDecimal(after),
		Reference:     reference,
		Remark:        cleanLedgerRemark(remark, fmt.Sprintf("refund for order %s", order.OrderNo)),
		CreatedAt:     now,
	}
	if err := repo.CreateTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions paginated ledger history
func (s *LedgerService) ListTransactions(filter repository.BalanceTransactionListFilter) ([]models.BalanceTransaction, int64, error) {
	return s.customerRepo.ListTransactions(filter)
}

func (s *LedgerService) changeBalance(customerID uint, amount decimal.Decimal, direction, txnType, reference, remark string) (*models.Customer, *models.BalanceTransaction, error) {
	var accountResult *models.Customer
	var txnResult *models.BalanceTransaction

	err := s.customerRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.customerRepo.WithTx(tx)
		account, err := repo.GetByIDForUpdate(customerID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrCustomerNotFound
		}

		now := time.Now()
		before := account.Balance.Decimal.Round(2)
		var after decimal.Decimal
		if direction == constants.BalanceTxnDirectionOut {
			after = before.Sub(amount).Round(2)
			if after.LessThan(decimal.Zero) {
				return ErrInsufficientBalance
			}
		} else {
			after = before.Add(amount).Round(2)
		}

		account.Balance = models.NewMoneyFromDecimal(after)
		account.UpdatedAt = now
		if err := repo.Update(account); err != nil {
			return err
		}

		txn := &models.BalanceTransaction{
			CustomerID:    customerID,
			Type:          txnType,
			Direction:     direction,
			Amount:        models.NewMoneyFromDecimal(amount),
			BalanceBefore: models.NewMoneyFromDecimal(before),
			BalanceAfter:  models.NewMoneyFromDecimal(after),
			Reference:     reference,
			Remark:        remark,
			CreatedAt:     now,
		}
		if err := repo.CreateTransaction(txn); err != nil {
			return err
		}

		accountResult = account
		txnResult = txn
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return accountResult, txnResult, nil
}

func buildLedgerReference(txnType string, customerID uint) string {
	return fmt.Sprintf("%s:%d:%d:%s", txnType, customerID, time.Now().UnixNano(), randNumeric(4))
}

func buildOrderLedgerReference(orderNo, txnType string) string {
	return fmt.Sprintf("order:%s:%s", orderNo, txnType)
}

func cleanLedgerRemark(remark, fallback string) string {
	trimmed := strings.TrimSpace(remark)
	if trimmed == "" {
		return fallback
	}
	if len([]rune(trimmed)) > 200 {
		return string([]rune(trimmed)[:200])
	}
	return trimmed
}
