package service

import (
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/shopspring/decimal"
)

var promoPercentMax = decimal.NewFromInt(100)

// PromoService percentage promo codes
type PromoService struct {
	promoRepo repository.PromoRepository
}

// NewPromoService creates the promo service
func NewPromoService(promoRepo repository.PromoRepository) *PromoService {
	return &PromoService{promoRepo: promoRepo}
}

// PromoInput promo create/update input
type PromoInput struct {
	Code            string
	DiscountPercent decimal.Decimal
	Headline        string
	IsActive        *bool
}

// Resolve looks up an active promo by code. An empty code resolves to
// no promo without error.
func (s *PromoService) Resolve(code string) (*models.Promo, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	promo, err := s.promoRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	if !promo.IsActive {
		return nil, ErrPromoInactive
	}
	return promo, nil
}

// DiscountAmount computes the discount a promo grants on a subtotal
func (s *PromoService) DiscountAmount(promo *models.Promo, subtotal decimal.Decimal) decimal.Decimal {
	if promo == nil || subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	percent := promo.DiscountPercent.Decimal
	if percent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if percent.GreaterThan(promoPercentMax) {
		percent = promoPercentMax
	}
	return percent.Div(promoPercentMax).Mul(subtotal).Round(2)
}

// FinalAmount prices a subtotal against a code. Unknown or inactive
// codes pass the subtotal through unchanged; checkout is where invalid
// codes get rejected.
func (s *PromoService) FinalAmount(code string, subtotal decimal.Decimal) decimal.Decimal {
	promo, err := s.Resolve(code)
	if err != nil || promo == nil {
		return subtotal.Round(2)
	}
	return subtotal.Sub(s.DiscountAmount(promo, subtotal)).Round(2)
}

// GetByID fetches a promo
func (s *PromoService) GetByID(id uint) (*models.Promo, error) {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	return promo, nil
}

// List paginated promo listing
func (s *PromoService) List(filter repository.PromoListFilter) ([]models.Promo, int64, error) {
	return s.promoRepo.List(filter)
}

// Create creates a promo
func (s *PromoService) Create(input PromoInput) (*models.Promo, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, ErrPromoNotFound
	}
	if err := validatePromoPercent(input.DiscountPercent); err != nil {
		return nil, err
	}
	existing, err := s.promoRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPromoCodeExists
	}

	now := time.Now()
	promo := &models.Promo{
		Code:            code,
		DiscountPercent: models.NewMoneyFromDecimal(input.DiscountPercent),
		Headline:        strings.TrimSpace(input.Headline),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
	if err := s.promoRepo.Create(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Update updates a promo
func (s *PromoService) Update(id uint, input PromoInput) (*models.Promo, error) {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	if err := validatePromoPercent(input.DiscountPercent); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code != "" && code != promo.Code {
		existing, err := s.promoRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != promo.ID {
			return nil, ErrPromoCodeExists
		}
		promo.Code = code
	}

	promo.DiscountPercent = models.NewMoneyFromDecimal(input.DiscountPercent)
	promo.Headline = strings.TrimSpace(input.Headline)
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
	promo.UpdatedAt = time.Now()
	if err := s.promoRepo.Update(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Delete removes a promo
func (s *PromoService) Delete(id uint) error {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if promo == nil {
		return ErrPromoNotFound
	}
	return s.promoRepo.Delete(id)
}

func validatePromoPercent(percent decimal.Decimal) error {
	if percent.LessThan(decimal.Zero) || percent.GreaterThan(promoPercentMax) {
		return ErrPromoPercentInvalid
	}
	return nil
}
