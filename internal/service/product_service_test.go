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

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewProductService(repository.NewProductRepository(db)), db
}

func TestProductServiceListPublicHidesInactive(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	active := createCartProduct(t, db, "Nasi Goreng", 25000, 10, true)
	createCartProduct(t, db, "Paket Lama", 35000, 10, false)

	products, total, err := svc.ListPublic("", "", 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != active.ID {
		t.Fatalf("expected only the active product, got total=%d len=%d", total, len(products))
	}

	if _, err := svc.GetPublic(active.ID); err != nil {
		t.Fatalf("get public failed: %v", err)
	}
}

func TestProductServiceGetPublicRejectsInactive(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	inactive := createCartProduct(t, db, "Paket Lama", 35000, 10, false)

	if _, err := svc.GetPublic(inactive.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got: %v", err)
	}
	// Admin still sees it.
	if _, err := svc.GetAdmin(inactive.ID); err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
}

func TestProductServiceCreateValidation(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Name: " ", Price: decimal.NewFromInt(1000)}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected product invalid for blank name, got: %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "Gratisan", Price: decimal.Zero}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected product invalid for zero price, got: %v", err)
	}
	negative := -1
	if _, err := svc.Create(ProductInput{Name: "Aneh", Price: decimal.NewFromInt(1000), Stock: &negative}); !errors.Is(err, ErrStockInvalid) {
		t.Fatalf("expected stock invalid, got: %v", err)
	}

	stock := 5
	product, err := svc.Create(ProductInput{Name: " Ayam Geprek ", Price: decimal.NewFromInt(20000), Stock: &stock, Category: "food"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Name != "Ayam Geprek" || product.Stock != 5 || !product.IsActive {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductServiceSetStock(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	product := createCartProduct(t, db, "Keripik", 12000, 3, true)

	updated, err := svc.SetStock(product.ID, 0)
	if err != nil {
		t.Fatalf("set stock failed: %v", err)
	}
	if updated.Stock != 0 {
		t.Fatalf("expected stock 0, got %d", updated.Stock)
	}
	if _, err := svc.SetStock(product.ID, -1); !errors.Is(err, ErrStockInvalid) {
		t.Fatalf("expected stock invalid, got: %v", err)
	}
	if _, err := svc.SetStock(product.ID+100, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got: %v", err)
	}
}

func TestProductServiceDelete(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	product := createCartProduct(t, db, "Es Teh", 8000, 10, true)

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got: %v", err)
	}
}
