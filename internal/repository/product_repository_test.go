package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/joymarket/joymarket/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createRepoProduct(t *testing.T, repo *GormProductRepository, name string, stock int, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(20000)),
		Stock:    stock,
		IsActive: active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestReserveStockLifecycle(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createRepoProduct(t, repo, "Ayam Geprek", 10, true)

	affected, err := repo.ReserveStock(product.ID, 3)
	if err != nil {
		t.Fatalf("reserve stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("reserve affected want 1 got %d", affected)
	}

	// Not enough left for 9.
	affected, err = repo.ReserveStock(product.ID, 9)
	if err != nil {
		t.Fatalf("reserve over available failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("reserve over available affected want 0 got %d", affected)
	}

	affected, err = repo.ReserveStock(product.ID, 7)
	if err != nil {
		t.Fatalf("reserve exact available failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("reserve exact available affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Stock != 0 {
		t.Fatalf("stock want 0 got %d", got.Stock)
	}

	if _, err := repo.ReserveStock(product.ID, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
}

func TestReleaseStockRestoresQuantity(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createRepoProduct(t, repo, "Es Teh Manis", 5, true)

	if _, err := repo.ReserveStock(product.ID, 5); err != nil {
		t.Fatalf("reserve stock failed: %v", err)
	}
	affected, err := repo.ReleaseStock(product.ID, 2)
	if err != nil {
		t.Fatalf("release stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("release affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Stock != 2 {
		t.Fatalf("stock want 2 got %d", got.Stock)
	}
}

func TestSetStockRejectsNegative(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createRepoProduct(t, repo, "Keripik Singkong", 3, true)

	if _, err := repo.SetStock(product.ID, -1); err == nil {
		t.Fatalf("expected error for negative stock")
	}
	affected, err := repo.SetStock(product.ID, 0)
	if err != nil {
		t.Fatalf("set stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("set stock affected want 1 got %d", affected)
	}
}

func TestListFiltersActiveStockAndSearch(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createRepoProduct(t, repo, "Nasi Goreng Spesial", 10, true)
	createRepoProduct(t, repo, "Nasi Uduk", 0, true)
	createRepoProduct(t, repo, "Paket Lama", 10, false)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, OnlyActive: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("active list want 2 got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, OnlyActive: true, InStock: true})
	if err != nil {
		t.Fatalf("list in stock failed: %v", err)
	}
	if total != 1 || products[0].Name != "Nasi Goreng Spesial" {
		t.Fatalf("in-stock list wrong: total=%d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "Nasi"})
	if err != nil {
		t.Fatalf("list search failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("search list want 2 got %d", total)
	}
}
