package repository

import (
	"fmt"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository aggregate queries for the admin dashboard.
// Aggregation only, no business rules.
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetStockStats(lowStockThreshold int) (DashboardStockStatsRow, error)
	GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error)
}

// DashboardOverviewRow raw overview counters
type DashboardOverviewRow struct {
	OrdersTotal      int64
	PendingOrders    int64
	InProgressOrders int64
	DeliveredOrders  int64
	RevenueDelivered float64
	NewCustomers     int64
	ActiveProducts   int64
	ActiveDeliveries int64
}

// DashboardOrderTrendRow per-day order counts
type DashboardOrderTrendRow struct {
	Day             string
	OrdersTotal     int64
	OrdersDelivered int64
}

// DashboardStockStatsRow stock counters
type DashboardStockStatsRow struct {
	OutOfStockProducts int64
	LowStockProducts   int64
}

// DashboardProductRankingRow raw product ranking row
type DashboardProductRankingRow struct {
	ProductID  uint
	Name       string
	Orders     int64
	Quantity   int64
	PaidAmount float64
}

// GormDashboardRepository GORM implementation
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates the dashboard repository
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview overview counters for the period
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusPending).Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusInProgress).Count(&result.InProgressOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusDelivered).Count(&result.DeliveredOrders).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND status = ?", startAt, endAt, constants.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.RevenueDelivered).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Customer{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewCustomers).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Delivery{}).
		Where("status != ?", constants.DeliveryStatusDelivered).
		Count(&result.ActiveDeliveries).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetOrderTrends per-day order trend
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	type totalRow struct {
		Day   string
		Total int64
	}
	type deliveredRow struct {
		Day       string
		Delivered int64
	}

	dayExpr := "CAST(date(created_at) AS TEXT)"

	var totals []totalRow
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as total", dayExpr)).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	var delivered []deliveredRow
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as delivered", dayExpr)).
		Where("created_at >= ? AND created_at < ? AND status = ?", startAt, endAt, constants.OrderStatusDelivered).
		Group(dayExpr).
		Order("day asc").
		Scan(&delivered).Error; err != nil {
		return nil, err
	}

	deliveredMap := make(map[string]int64, len(delivered))
	for _, item := range delivered {
		deliveredMap[item.Day] = item.Delivered
	}

	result := make([]DashboardOrderTrendRow, 0, len(totals))
	for _, item := range totals {
		result = append(result, DashboardOrderTrendRow{
			Day:             item.Day,
			OrdersTotal:     item.Total,
			OrdersDelivered: deliveredMap[item.Day],
		})
	}
	return result, nil
}

// GetStockStats stock counters
func (r *GormDashboardRepository) GetStockStats(lowStockThreshold int) (DashboardStockStatsRow, error) {
	result := DashboardStockStatsRow{}

	if err := r.db.Model(&models.Product{}).
		Where("is_active = ? AND stock = 0", true).
		Count(&result.OutOfStockProducts).Error; err != nil {
		return result, err
	}

	if lowStockThreshold <= 0 {
		lowStockThreshold = 5
	}
	if err := r.db.Model(&models.Product{}).
		Where("is_active = ? AND stock > 0 AND stock <= ?", true, lowStockThreshold).
		Count(&result.LowStockProducts).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetTopProducts best selling products by delivered order quantity
func (r *GormDashboardRepository) GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []DashboardProductRankingRow
	if err := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id as product_id, order_items.product_name as name, COUNT(DISTINCT order_items.order_id) as orders, COALESCE(SUM(order_items.quantity), 0) as quantity, COALESCE(SUM(order_items.total_price), 0) as paid_amount").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status = ?", startAt, endAt, constants.OrderStatusDelivered).
		Group("order_items.product_id, order_items.product_name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
