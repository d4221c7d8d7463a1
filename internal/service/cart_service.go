package service

import (
	"time"

	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/shopspring/decimal"
)

// CartDetail cart contents with the computed subtotal
type CartDetail struct {
	Item     *models.CartItem `json:"item"`
	Subtotal models.Money     `json:"subtotal"`
	Currency string           `json:"currency"`
}

// UpsertCartInput add/edit cart input
type UpsertCartInput struct {
	CustomerID uint
	ProductID  uint
	Quantity   int
}

// CartService single-line cart. A customer carries at most one product
// at a time; adding the same product again merges quantities.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	currency    string
}

// NewCartService creates the cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, currency string) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		currency:    currency,
	}
}

// Get returns the customer's cart with its subtotal
func (s *CartService) Get(customerID uint) (*CartDetail, error) {
	if customerID == 0 {
		return nil, ErrCustomerNotFound
	}
	item, err := s.cartRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	detail := &CartDetail{
		Subtotal: models.NewMoneyFromDecimal(decimal.Zero),
		Currency: s.currency,
	}
	if item == nil {
		return detail, nil
	}
	// A product pulled from the catalog after being carted leaves a
	// dangling line; drop it instead of surfacing it.
	if item.Product == nil {
		if err := s.cartRepo.ClearByCustomer(customerID); err != nil {
			return nil, err
		}
		return detail, nil
	}
	detail.Item = item
	detail.Subtotal = models.NewMoneyFromDecimal(
		item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2))
	return detail, nil
}

// Add puts a product in the cart, merging quantity when the same
// product is already carted.
func (s *CartService) Add(input UpsertCartInput) (*models.CartItem, error) {
	if input.CustomerID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidCartItem
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	existing, err := s.cartRepo.GetByCustomer(input.CustomerID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if existing != nil {
		if existing.ProductID != input.ProductID {
			return nil, ErrCartHoldsOtherProduct
		}
		quantity += existing.Quantity
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	now := time.Now()
	item := &models.CartItem{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// EditQuantity replaces the quantity of the carted line
func (s *CartService) EditQuantity(input UpsertCartInput) (*models.CartItem, error) {
	if input.CustomerID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidCartItem
	}

	existing, err := s.cartRepo.GetByCustomer(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.ProductID != input.ProductID {
		return nil, ErrInvalidCartItem
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	if input.Quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	existing.Quantity = input.Quantity
	existing.UpdatedAt = time.Now()
	if err := s.cartRepo.Upsert(existing); err != nil {
		return nil, err
	}
	existing.Product = product
	return existing, nil
}

// Remove drops the carted line
func (s *CartService) Remove(customerID, productID uint) error {
	if customerID == 0 || productID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteByCustomerAndProduct(customerID, productID)
}

// Clear empties the cart
func (s *CartService) Clear(customerID uint) error {
	if customerID == 0 {
		return ErrCustomerNotFound
	}
	return s.cartRepo.ClearByCustomer(customerID)
}
