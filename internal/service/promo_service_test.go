package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPromoServiceTest(t *testing.T) (*PromoService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:promo_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Promo{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewPromoService(repository.NewPromoRepository(db)), db
}

func createPromo(t *testing.T, db *gorm.DB, code string, percent int64, active bool) *models.Promo {
	t.Helper()
	promo := &models.Promo{
		Code:            code,
		DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(percent)),
		IsActive:        active,
	}
	if err := db.Create(promo).Error; err != nil {
		t.Fatalf("create promo failed: %v", err)
	}
	return promo
}

func TestPromoServiceFinalAmountPassesThroughBadCodes(t *testing.T) {
	svc, db := setupPromoServiceTest(t)
	createPromo(t, db, "EXPIRED50", 50, false)

	subtotal := decimal.NewFromInt(40000)
	if got := svc.FinalAmount("NOPE", subtotal); !got.Equal(subtotal) {
		t.Fatalf("unknown code changed the subtotal: %s", got.String())
	}
	if got := svc.FinalAmount("EXPIRED50", subtotal); !got.Equal(subtotal) {
		t.Fatalf("inactive code changed the subtotal: %s", got.String())
	}
	if got := svc.FinalAmount("", subtotal); !got.Equal(subtotal) {
		t.Fatalf("empty code changed the subtotal: %s", got.String())
	}
}

func TestPromoServiceFinalAmountWithActiveCode(t *testing.T) {
	svc, db := setupPromoServiceTest(t)
	createPromo(t, db, "SAVE10", 10, true)

	got := svc.FinalAmount("SAVE10", decimal.NewFromInt(40000))
	if !got.Equal(decimal.NewFromInt(36000)) {
		t.Fatalf("expected 36000, got %s", got.String())
	}
}

func TestPromoServiceDiscountAmount(t *testing.T) {
	svc, _ := setupPromoServiceTest(t)

	promo := &models.Promo{DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(10))}
	if got := svc.DiscountAmount(promo, decimal.NewFromInt(40000)); !got.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected 4000, got %s", got.String())
	}
	if got := svc.DiscountAmount(nil, decimal.NewFromInt(40000)); !got.IsZero() {
		t.Fatalf("nil promo should give zero, got %s", got.String())
	}
	over := &models.Promo{DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(150))}
	if got := svc.DiscountAmount(over, decimal.NewFromInt(100)); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("percent above 100 should cap at subtotal, got %s", got.String())
	}
}

func TestPromoServiceResolve(t *testing.T) {
	svc, db := setupPromoServiceTest(t)
	createPromo(t, db, "WELCOME20", 20, true)
	createPromo(t, db, "EXPIRED50", 50, false)

	promo, err := svc.Resolve(" WELCOME20 ")
	if err != nil || promo == nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if _, err := svc.Resolve("EXPIRED50"); !errors.Is(err, ErrPromoInactive) {
		t.Fatalf("expected promo inactive, got: %v", err)
	}
	if _, err := svc.Resolve("NOPE"); !errors.Is(err, ErrPromoNotFound) {
		t.Fatalf("expected promo not found, got: %v", err)
	}
	promo, err = svc.Resolve("")
	if err != nil || promo != nil {
		t.Fatalf("empty code should resolve to nothing, got promo=%v err=%v", promo, err)
	}
}

func TestPromoServiceCreateValidation(t *testing.T) {
	svc, db := setupPromoServiceTest(t)
	createPromo(t, db, "SAVE10", 10, true)

	if _, err := svc.Create(PromoInput{Code: "save10", DiscountPercent: decimal.NewFromInt(15)}); !errors.Is(err, ErrPromoCodeExists) {
		t.Fatalf("expected promo code exists, got: %v", err)
	}
	if _, err := svc.Create(PromoInput{Code: "TOOBIG", DiscountPercent: decimal.NewFromInt(120)}); !errors.Is(err, ErrPromoPercentInvalid) {
		t.Fatalf("expected percent invalid, got: %v", err)
	}

	promo, err := svc.Create(PromoInput{Code: " baru25 ", DiscountPercent: decimal.NewFromInt(25), Headline: "Promo baru"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if promo.Code != "BARU25" || !promo.IsActive {
		t.Fatalf("unexpected promo: %+v", promo)
	}
}
