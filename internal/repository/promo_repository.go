package repository

import (
	"errors"

	"github.com/joymarket/joymarket/internal/models"

	"gorm.io/gorm"
)

// PromoRepository promo data access
type PromoRepository interface {
	GetByID(id uint) (*models.Promo, error)
	GetByCode(code string) (*models.Promo, error)
	Create(promo *models.Promo) error
	Update(promo *models.Promo) error
	Delete(id uint) error
	List(filter PromoListFilter) ([]models.Promo, int64, error)
	WithTx(tx *gorm.DB) *GormPromoRepository
}

// GormPromoRepository GORM implementation
type GormPromoRepository struct {
	db *gorm.DB
}

// NewPromoRepository creates the promo repository
func NewPromoRepository(db *gorm.DB) *GormPromoRepository {
	return &GormPromoRepository{db: db}
}

// WithTx binds a transaction
func (r *GormPromoRepository) WithTx(tx *gorm.DB) *GormPromoRepository {
	if tx == nil {
		return r
	}
	return &GormPromoRepository{db: tx}
}

// GetByID fetches a promo by ID
func (r *GormPromoRepository) GetByID(id uint) (*models.Promo, error) {
	var promo models.Promo
	if err := r.db.First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

// GetByCode fetches a promo by its unique code
func (r *GormPromoRepository) GetByCode(code string) (*models.Promo, error) {
	var promo models.Promo
	if err := r.db.Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

// Create creates a promo
func (r *GormPromoRepository) Create(promo *models.Promo) error {
	return r.db.Create(promo).Error
}

// Update saves a promo
func (r *GormPromoRepository) Update(promo *models.Promo) error {
	return r.db.Save(promo).Error
}

// Delete soft-deletes a promo
func (r *GormPromoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Promo{}, id).Error
}

// List paginated promo listing
func (r *GormPromoRepository) List(filter PromoListFilter) ([]models.Promo, int64, error) {
	query := r.db.Model(&models.Promo{})
	if filter.Code != "" {
		query = query.Where("code LIKE ?", "%"+filter.Code+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var promos []models.Promo
	if err := query.Order("id DESC").Find(&promos).Error; err != nil {
		return nil, 0, err
	}
	return promos, total, nil
}
