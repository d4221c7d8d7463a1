package repository

import (
	"errors"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"

	"gorm.io/gorm"
)

// CourierRepository courier data access
type CourierRepository interface {
	GetByID(id uint) (*models.Courier, error)
	GetByUserID(userID uint) (*models.Courier, error)
	Create(courier *models.Courier) error
	Update(courier *models.Courier) error
	Delete(id uint) error
	List(page, pageSize int) ([]models.Courier, int64, error)
	CountActiveDeliveries(courierID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCourierRepository
}

// GormCourierRepository GORM implementation
type GormCourierRepository struct {
	db *gorm.DB
}

// NewCourierRepository creates the courier repository
func NewCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// WithTx binds a transaction
func (r *GormCourierRepository) WithTx(tx *gorm.DB) *GormCourierRepository {
	if tx == nil {
		return r
	}
	return &GormCourierRepository{db: tx}
}

// GetByID fetches a courier by ID
func (r *GormCourierRepository) GetByID(id uint) (*models.Courier, error) {
	if id == 0 {
		return nil, nil
	}
	var courier models.Courier
	if err := r.db.Preload("User").First(&courier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &courier, nil
}

// GetByUserID fetches a courier by the linked user ID
func (r *GormCourierRepository) GetByUserID(userID uint) (*models.Courier, error) {
	if userID == 0 {
		return nil, nil
	}
	var courier models.Courier
	if err := r.db.Where("user_id = ?", userID).First(&courier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &courier, nil
}

// Create creates a courier profile
func (r *GormCourierRepository) Create(courier *models.Courier) error {
	return r.db.Create(courier).Error
}

// Update saves a courier profile
func (r *GormCourierRepository) Update(courier *models.Courier) error {
	return r.db.Save(courier).Error
}

// Delete soft-deletes a courier
func (r *GormCourierRepository) Delete(id uint) error {
	return r.db.Delete(&models.Courier{}, id).Error
}

// List paginated courier listing
func (r *GormCourierRepository) List(page, pageSize int) ([]models.Courier, int64, error) {
	query := r.db.Model(&models.Courier{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	var couriers []models.Courier
	if err := query.Preload("User").Order("id DESC").Find(&couriers).Error; err != nil {
		return nil, 0, err
	}
	return couriers, total, nil
}

// CountActiveDeliveries counts deliveries not yet delivered for a courier
func (r *GormCourierRepository) CountActiveDeliveries(courierID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Delivery{}).
		Where("courier_id = ? AND status != ?", courierID, constants.DeliveryStatusDelivered).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
