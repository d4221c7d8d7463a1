package repository

import (
	"errors"

	"github.com/joymarket/joymarket/internal/models"

	"gorm.io/gorm"
)

// CartRepository cart data access
type CartRepository interface {
	GetByCustomer(customerID uint) (*models.CartItem, error)
	Upsert(item *models.CartItem) error
	DeleteByCustomerAndProduct(customerID, productID uint) error
	ClearByCustomer(customerID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM implementation
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds a transaction
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByCustomer fetches the customer's single cart line
func (r *GormCartRepository) GetByCustomer(customerID uint) (*models.CartItem, error) {
	if customerID == 0 {
		return nil, nil
	}
	var item models.CartItem
	if err := r.db.Preload("Product").Where("customer_id = ?", customerID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Upsert inserts or updates the cart line
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	var existing models.CartItem
	err := r.db.Where("customer_id = ? AND product_id = ?", item.CustomerID, item.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("quantity", item.Quantity).Error
}

// DeleteByCustomerAndProduct removes the cart line
func (r *GormCartRepository) DeleteByCustomerAndProduct(customerID, productID uint) error {
	return r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).Delete(&models.CartItem{}).Error
}

// ClearByCustomer empties the customer's cart
func (r *GormCartRepository) ClearByCustomer(customerID uint) error {
	return r.db.Where("customer_id = ?", customerID).Delete(&models.CartItem{}).Error
}
