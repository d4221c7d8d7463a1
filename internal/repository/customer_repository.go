package repository

import (
	"errors"
	"strings"

	"github.com/joymarket/joymarket/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerRepository customer and ledger data access
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	GetByUserID(userID uint) (*models.Customer, error)
	GetByIDForUpdate(id uint) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	List(page, pageSize int) ([]models.Customer, int64, error)
	CreateTransaction(txn *models.BalanceTransaction) error
	GetTransactionByReference(reference string) (*models.BalanceTransaction, error)
	ListTransactions(filter BalanceTransactionListFilter) ([]models.BalanceTransaction, int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormCustomerRepository
}

// GormCustomerRepository GORM implementation
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates the customer repository
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx binds a transaction
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// Transaction runs fn inside a database transaction
func (r *GormCustomerRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID fetches a customer by ID
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	if id == 0 {
		return nil, nil
	}
	var customer models.Customer
	if err := r.db.Preload("User").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByUserID fetches a customer by the linked user ID
func (r *GormCustomerRepository) GetByUserID(userID uint) (*models.Customer, error) {
	if userID == 0 {
		return nil, nil
	}
	var customer models.Customer
	if err := r.db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByIDForUpdate fetches a customer row-locked for balance changes
func (r *GormCustomerRepository) GetByIDForUpdate(id uint) (*models.Customer, error) {
	if id == 0 {
		return nil, nil
	}
	var customer models.Customer
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create creates a customer profile
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update saves a customer profile
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// List paginated customer listing
func (r *GormCustomerRepository) List(page, pageSize int) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	var customers []models.Customer
	if err := query.Preload("User").Order("id DESC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// CreateTransaction records a ledger entry
func (r *GormCustomerRepository) CreateTransaction(txn *models.BalanceTransaction) error {
	return r.db.Create(txn).Error
}

// GetTransactionByReference fetches a ledger entry by its unique reference
func (r *GormCustomerRepository) GetTransactionByReference(reference string) (*models.BalanceTransaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, nil
	}
	var txn models.BalanceTransaction
	if err := r.db.Where("reference = ?", reference).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// ListTransactions paginated ledger listing
func (r *GormCustomerRepository) ListTransactions(filter BalanceTransactionListFilter) ([]models.BalanceTransaction, int64, error) {
	query := r.db.Model(&models.BalanceTransaction{})
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Direction != "" {
		query = query.Where("direction = ?", filter.Direction)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var txns []models.BalanceTransaction
	if err := query.Order("id DESC").Find(&txns).Error; err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}
