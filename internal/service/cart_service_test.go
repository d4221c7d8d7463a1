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

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(cartRepo, productRepo, "IDR"), db
}

func createCartProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock:    stock,
		IsActive: active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartServiceAddMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartProduct(t, db, "Nasi Goreng", 25000, 10, true)

	if _, err := svc.Add(UpsertCartInput{CustomerID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := svc.Add(UpsertCartInput{CustomerID: 1, ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", item.Quantity)
	}

	detail, err := svc.Get(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if !detail.Subtotal.Decimal.Equal(decimal.NewFromInt(125000)) {
		t.Fatalf("unexpected subtotal: %s", detail.Subtotal.String())
	}
}

func TestCartServiceAddRejectsSecondProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	first := createCartProduct(t, db, "Nasi Goreng", 25000, 10, true)
	second := createCartProduct(t, db, "Es Teh", 8000, 10, true)

	if _, err := svc.Add(UpsertCartInput{CustomerID: 2, ProductID: first.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add(UpsertCartInput{CustomerID: 2, ProductID: second.ID, Quantity: 1}); !errors.Is(err, ErrCartHoldsOtherProduct) {
		t.Fatalf("expected cart holds other product, got: %v", err)
	}

	if err := svc.Remove(2, first.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := svc.Add(UpsertCartInput{CustomerID: 2, ProductID: second.ID, Quantity: 1}); err != nil {
		t.Fatalf("add after remove failed: %v", err)
	}
}

func TestCartServiceAddChecksStockAndAvailability(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	lowStock := createCartProduct(t, db, "Keripik", 12000, 2, true)
	inactive := createCartProduct(t, db, "Paket Lama", 35000, 10, false)

	if _, err := svc.Add(UpsertCartInput{CustomerID: 3, ProductID: lowStock.ID, Quantity: 3}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got: %v", err)
	}
	if _, err := svc.Add(UpsertCartInput{CustomerID: 3, ProductID: inactive.ID, Quantity: 1}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected product not available, got: %v", err)
	}
	if _, err := svc.Add(UpsertCartInput{CustomerID: 3, ProductID: lowStock.ID, Quantity: 0}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected invalid cart item, got: %v", err)
	}
}

func TestCartServiceEditQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartProduct(t, db, "Kopi Susu", 18000, 5, true)

	if _, err := svc.Add(UpsertCartInput{CustomerID: 4, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	item, err := svc.EditQuantity(UpsertCartInput{CustomerID: 4, ProductID: product.ID, Quantity: 4})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if item.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", item.Quantity)
	}

	if _, err := svc.EditQuantity(UpsertCartInput{CustomerID: 4, ProductID: product.ID, Quantity: 6}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got: %v", err)
	}
	if _, err := svc.EditQuantity(UpsertCartInput{CustomerID: 4, ProductID: product.ID + 100, Quantity: 1}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected invalid cart item, got: %v", err)
	}
}

func TestCartServiceGetEmpty(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	detail, err := svc.Get(9)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.Item != nil || !detail.Subtotal.Decimal.IsZero() {
		t.Fatalf("expected empty cart, got: %+v", detail)
	}
	if detail.Currency != "IDR" {
		t.Fatalf("unexpected currency: %s", detail.Currency)
	}
}
