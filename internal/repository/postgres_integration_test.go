//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.Delivery{},
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Customer{},
		&models.Courier{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Courier{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresProductSearchUsesILike(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)

	product := &models.Product{
		Name:     "Nasi Goreng Spesial",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(25000)),
		Stock:    10,
		IsActive: true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	rows, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "nasi goreng"})
	if err != nil {
		t.Fatalf("product search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("case-insensitive search want 1 got total=%d len=%d", total, len(rows))
	}
}

func TestPostgresStockReserveIsConditional(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)

	product := &models.Product{
		Name:     "Es Teh Manis",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(8000)),
		Stock:    2,
		IsActive: true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	affected, err := repo.ReserveStock(product.ID, 3)
	if err != nil {
		t.Fatalf("reserve over available failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("reserve over available affected want 0 got %d", affected)
	}

	affected, err = repo.ReserveStock(product.ID, 2)
	if err != nil {
		t.Fatalf("reserve stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("reserve affected want 1 got %d", affected)
	}
}

func TestPostgresDashboardQueries(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewDashboardRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	order := &models.Order{
		OrderNo:        "JM20260101120000000901",
		CustomerID:     1,
		Status:         constants.OrderStatusDelivered,
		Currency:       "IDR",
		OriginalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(50000)),
		TotalAmount:    models.NewMoneyFromDecimal(decimal.NewFromInt(50000)),
		OrderedAt:      now,
		CreatedAt:      now,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	orderItem := &models.OrderItem{
		OrderID:     order.ID,
		ProductID:   1,
		ProductName: "Ayam Geprek",
		UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(25000)),
		Quantity:    2,
		TotalPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(50000)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(orderItem).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	startAt := now.Add(-time.Hour)
	endAt := now.Add(time.Hour)

	overview, err := repo.GetOverview(startAt, endAt)
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if overview.OrdersTotal != 1 || overview.DeliveredOrders != 1 {
		t.Fatalf("overview counters wrong: %+v", overview)
	}

	topProducts, err := repo.GetTopProducts(startAt, endAt, 5)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	if len(topProducts) != 1 || topProducts[0].Name != "Ayam Geprek" {
		t.Fatalf("unexpected top products: %+v", topProducts)
	}

	orderTrends, err := repo.GetOrderTrends(startAt, endAt)
	if err != nil {
		t.Fatalf("get order trends failed: %v", err)
	}
	if len(orderTrends) == 0 || strings.TrimSpace(orderTrends[0].Day) == "" {
		t.Fatalf("order trends should have a day row: %+v", orderTrends)
	}
}
