package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
	); err != nil {
		t.Fatalf("migrate dashboard models failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func createDashboardOrder(t *testing.T, db *gorm.DB, orderNo, status string, total int64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:        orderNo,
		CustomerID:     1,
		Status:         status,
		Currency:       "IDR",
		OriginalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		TotalAmount:    models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		OrderedAt:      createdAt,
		CreatedAt:      createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestGetOverviewCountsByStatus(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()

	createDashboardOrder(t, db, "JM20260101120000000101", constants.OrderStatusPending, 40000, now)
	createDashboardOrder(t, db, "JM20260101120000000102", constants.OrderStatusInProgress, 25000, now)
	createDashboardOrder(t, db, "JM20260101120000000103", constants.OrderStatusDelivered, 60000, now)
	createDashboardOrder(t, db, "JM20260101120000000104", constants.OrderStatusDelivered, 15000, now)
	// Outside the window.
	createDashboardOrder(t, db, "JM20260101120000000105", constants.OrderStatusDelivered, 99000, now.Add(-48*time.Hour))

	if err := db.Create(&models.Product{Name: "Nasi Goreng", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(25000)), Stock: 10, IsActive: true}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	row, err := repo.GetOverview(now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if row.OrdersTotal != 4 {
		t.Fatalf("orders total want 4 got %d", row.OrdersTotal)
	}
	if row.PendingOrders != 1 || row.InProgressOrders != 1 || row.DeliveredOrders != 2 {
		t.Fatalf("status counters wrong: %+v", row)
	}
	if row.RevenueDelivered != 75000 {
		t.Fatalf("delivered revenue want 75000 got %.2f", row.RevenueDelivered)
	}
	if row.ActiveProducts != 1 {
		t.Fatalf("active products want 1 got %d", row.ActiveProducts)
	}
}

func TestGetStockStats(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	products := []models.Product{
		{Name: "Habis", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10000)), Stock: 0, IsActive: true},
		{Name: "Menipis", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10000)), Stock: 3, IsActive: true},
		{Name: "Aman", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10000)), Stock: 50, IsActive: true},
		{Name: "Nonaktif", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10000)), Stock: 0, IsActive: false},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	row, err := repo.GetStockStats(5)
	if err != nil {
		t.Fatalf("get stock stats failed: %v", err)
	}
	if row.OutOfStockProducts != 1 {
		t.Fatalf("out of stock want 1 got %d", row.OutOfStockProducts)
	}
	if row.LowStockProducts != 1 {
		t.Fatalf("low stock want 1 got %d", row.LowStockProducts)
	}
}

func TestGetTopProductsRanksByDeliveredQuantity(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()

	delivered := createDashboardOrder(t, db, "JM20260101120000000106", constants.OrderStatusDelivered, 50000, now)
	pending := createDashboardOrder(t, db, "JM20260101120000000107", constants.OrderStatusPending, 20000, now)

	items := []models.OrderItem{
		{OrderID: delivered.ID, ProductID: 1, ProductName: "Ayam Geprek", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20000)), Quantity: 2, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(40000))},
		{OrderID: delivered.ID, ProductID: 2, ProductName: "Es Teh Manis", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10000)), Quantity: 1, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10000))},
		// Pending orders stay out of the ranking.
		{OrderID: pending.ID, ProductID: 1, ProductName: "Ayam Geprek", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20000)), Quantity: 1, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20000))},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("create order item failed: %v", err)
		}
	}

	rows, err := repo.GetTopProducts(now.Add(-time.Hour), now.Add(time.Hour), 5)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows len want 2 got %d", len(rows))
	}
	if rows[0].ProductID != 1 || rows[0].Quantity != 2 || rows[0].Orders != 1 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[0].PaidAmount != 40000 {
		t.Fatalf("paid amount want 40000 got %.2f", rows[0].PaidAmount)
	}
}

func TestGetOrderTrendsMergesDeliveredCounts(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()

	createDashboardOrder(t, db, "JM20260101120000000108", constants.OrderStatusDelivered, 30000, now)
	createDashboardOrder(t, db, "JM20260101120000000109", constants.OrderStatusPending, 10000, now)

	rows, err := repo.GetOrderTrends(now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("get order trends failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows len want 1 got %d", len(rows))
	}
	if rows[0].OrdersTotal != 2 || rows[0].OrdersDelivered != 1 {
		t.Fatalf("unexpected trend row: %+v", rows[0])
	}
}
