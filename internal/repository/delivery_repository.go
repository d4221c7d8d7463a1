package repository

import (
	"errors"

	"github.com/joymarket/joymarket/internal/models"

	"gorm.io/gorm"
)

// DeliveryRepository delivery data access
type DeliveryRepository interface {
	Create(delivery *models.Delivery) error
	GetByID(id uint) (*models.Delivery, error)
	GetByOrderID(orderID uint) (*models.Delivery, error)
	List(filter DeliveryListFilter) ([]models.Delivery, int64, error)
	UpdateStatusFrom(id uint, fromStatus, toStatus string, updates map[string]interface{}) (int64, error)
	WithTx(tx *gorm.DB) *GormDeliveryRepository
}

// GormDeliveryRepository GORM implementation
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates the delivery repository
func NewDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// WithTx binds a transaction
func (r *GormDeliveryRepository) WithTx(tx *gorm.DB) *GormDeliveryRepository {
	if tx == nil {
		return r
	}
	return &GormDeliveryRepository{db: tx}
}

// Create inserts a delivery record
func (r *GormDeliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

// GetByID fetches a delivery by ID
func (r *GormDeliveryRepository) GetByID(id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.Preload("Courier").Preload("Courier.User").First(&delivery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// GetByOrderID fetches the delivery for an order
func (r *GormDeliveryRepository) GetByOrderID(orderID uint) (*models.Delivery, error) {
	if orderID == 0 {
		return nil, nil
	}
	var delivery models.Delivery
	if err := r.db.Where("order_id = ?", orderID).First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// List paginated delivery listing
func (r *GormDeliveryRepository) List(filter DeliveryListFilter) ([]models.Delivery, int64, error) {
	query := r.db.Model(&models.Delivery{})
	if filter.CourierID != 0 {
		query = query.Where("courier_id = ?", filter.CourierID)
	}
	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var deliveries []models.Delivery
	if err := query.Preload("Courier").Order("id DESC").Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// UpdateStatusFrom advances the delivery status only when the current
// status matches, returning affected rows.
func (r *GormDeliveryRepository) UpdateStatusFrom(id uint, fromStatus, toStatus string, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = toStatus
	result := r.db.Model(&models.Delivery{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
