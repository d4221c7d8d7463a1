package service

import (
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService catalog management
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates the product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput create/update product input
type ProductInput struct {
	Name      string
	Price     decimal.Decimal
	Stock     *int
	Category  string
	IsActive  *bool
	SortOrder int
}

// ListPublic storefront listing, active products only
func (s *ProductService) ListPublic(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   strings.TrimSpace(category),
		Search:     strings.TrimSpace(search),
		OnlyActive: true,
	}
	return s.repo.List(filter)
}

// GetPublic storefront product detail
func (s *ProductService) GetPublic(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin admin-side listing including inactive products
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// GetAdmin admin-side product detail
func (s *ProductService) GetAdmin(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create creates a product
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductInvalid
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductInvalid
	}
	stock := 0
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrStockInvalid
		}
		stock = *input.Stock
	}

	now := time.Now()
	product := &models.Product{
		Name:      name,
		Price:     models.NewMoneyFromDecimal(input.Price),
		Stock:     stock,
		Category:  strings.TrimSpace(input.Category),
		IsActive:  true,
		SortOrder: input.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update updates a product
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductInvalid
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductInvalid
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrStockInvalid
		}
		product.Stock = *input.Stock
	}

	product.Name = name
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.Category = strings.TrimSpace(input.Category)
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}

// SetStock replaces the stock count, rejecting negative values
func (s *ProductService) SetStock(id uint, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, ErrStockInvalid
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.repo.SetStock(id, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	return product, nil
}
