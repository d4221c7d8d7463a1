package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/cache"
	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/repository"
)

const (
	dashboardCacheTTL      = 45 * time.Second
	dashboardCustomMaxDays = 90
)

// DashboardService aggregates the admin home page figures
type DashboardService struct {
	repo              repository.DashboardRepository
	currency          string
	lowStockThreshold int
	topProductsLimit  int
}

// NewDashboardService creates the dashboard service
func NewDashboardService(repo repository.DashboardRepository, cfg *config.Config) *DashboardService {
	s := &DashboardService{repo: repo}
	if cfg != nil {
		s.currency = strings.ToUpper(strings.TrimSpace(cfg.Site.Currency))
		s.lowStockThreshold = cfg.Catalog.LowStockThreshold
		s.topProductsLimit = cfg.Dashboard.TopProductsLimit
	}
	return s
}

// DashboardQueryInput dashboard query input
type DashboardQueryInput struct {
	Range        string
	From         *time.Time
	To           *time.Time
	Timezone     string
	ForceRefresh bool
}

// DashboardOverviewResponse overview response
type DashboardOverviewResponse struct {
	Range    string               `json:"range"`
	From     string               `json:"from"`
	To       string               `json:"to"`
	Timezone string               `json:"timezone"`
	Currency string               `json:"currency,omitempty"`
	KPI      DashboardKPI         `json:"kpi"`
	Alerts   []DashboardAlertItem `json:"alerts"`
}

// DashboardKPI headline counters
type DashboardKPI struct {
	OrdersTotal        int64  `json:"orders_total"`
	PendingOrders      int64  `json:"pending_orders"`
	InProgressOrders   int64  `json:"in_progress_orders"`
	DeliveredOrders    int64  `json:"delivered_orders"`
	RevenueDelivered   string `json:"revenue_delivered"`
	DeliveryRate       string `json:"delivery_rate"`
	NewCustomers       int64  `json:"new_customers"`
	ActiveProducts     int64  `json:"active_products"`
	ActiveDeliveries   int64  `json:"active_deliveries"`
	OutOfStockProducts int64  `json:"out_of_stock_products"`
	LowStockProducts   int64  `json:"low_stock_products"`
}

// DashboardAlertItem stock or backlog warning
type DashboardAlertItem struct {
	Type  string `json:"type"`
	Level string `json:"level"`
	Value int64  `json:"value"`
}

// DashboardTrendResponse per-day trend response
type DashboardTrendResponse struct {
	Range    string                `json:"range"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Timezone string                `json:"timezone"`
	Points   []DashboardTrendPoint `json:"points"`
}

// DashboardTrendPoint one day of order counts
type DashboardTrendPoint struct {
	Date            string `json:"date"`
	OrdersTotal     int64  `json:"orders_total"`
	OrdersDelivered int64  `json:"orders_delivered"`
}

// DashboardRankingsResponse best sellers response
type DashboardRankingsResponse struct {
	Range       string                    `json:"range"`
	From        string                    `json:"from"`
	To          string                    `json:"to"`
	Timezone    string                    `json:"timezone"`
	TopProducts []DashboardProductRanking `json:"top_products"`
}

// DashboardProductRanking best seller row
type DashboardProductRanking struct {
	ProductID  uint   `json:"product_id"`
	Name       string `json:"name"`
	Orders     int64  `json:"orders"`
	Quantity   int64  `json:"quantity"`
	PaidAmount string `json:"paid_amount"`
}

type dashboardWindow struct {
	rangeKey string
	startAt  time.Time
	endAt    time.Time
	timezone string
}

// GetOverview headline counters for the period
func (s *DashboardService) GetOverview(ctx context.Context, input DashboardQueryInput) (*DashboardOverviewResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardOverviewResponse{}, nil
	}

	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:overview:%s:%d:%d:%s:%d",
		window.rangeKey,
		window.startAt.Unix(),
		window.endAt.Unix(),
		window.timezone,
		s.lowStockThreshold,
	)
	if !input.ForceRefresh {
		var cached DashboardOverviewResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	overview, err := s.repo.GetOverview(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	stockStats, err := s.repo.GetStockStats(s.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	deliveryRate := 0.0
	if overview.OrdersTotal > 0 {
		deliveryRate = float64(overview.DeliveredOrders) / float64(overview.OrdersTotal) * 100
	}

	response := &DashboardOverviewResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		Currency: s.currency,
		KPI: DashboardKPI{
			OrdersTotal:        overview.OrdersTotal,
			PendingOrders:      overview.PendingOrders,
			InProgressOrders:   overview.InProgressOrders,
			DeliveredOrders:    overview.DeliveredOrders,
			RevenueDelivered:   formatMoneyValue(overview.RevenueDelivered),
			DeliveryRate:       formatPercentValue(deliveryRate),
			NewCustomers:       overview.NewCustomers,
			ActiveProducts:     overview.ActiveProducts,
			ActiveDeliveries:   overview.ActiveDeliveries,
			OutOfStockProducts: stockStats.OutOfStockProducts,
			LowStockProducts:   stockStats.LowStockProducts,
		},
		Alerts: buildDashboardAlerts(overview, stockStats),
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

// GetTrends per-day order trend for the period
func (s *DashboardService) GetTrends(ctx context.Context, input DashboardQueryInput) (*DashboardTrendResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardTrendResponse{}, nil
	}

	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:trends:%s:%d:%d:%s", window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), window.timezone)
	if !input.ForceRefresh {
		var cached DashboardTrendResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetOrderTrends(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	rowMap := make(map[string]repository.DashboardOrderTrendRow, len(rows))
	for _, item := range rows {
		rowMap[item.Day] = item
	}

	// Every day in the window gets a point, even when nothing happened.
	points := make([]DashboardTrendPoint, 0)
	for cursor := time.Date(window.startAt.Year(), window.startAt.Month(), window.startAt.Day(), 0, 0, 0, 0, window.startAt.Location()); cursor.Before(window.endAt); cursor = cursor.AddDate(0, 0, 1) {
		day := cursor.Format("2006-01-02")
		item := rowMap[day]
		points = append(points, DashboardTrendPoint{
			Date:            day,
			OrdersTotal:     item.OrdersTotal,
			OrdersDelivered: item.OrdersDelivered,
		})
	}

	response := &DashboardTrendResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		Points:   points,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

// GetRankings best sellers for the period
func (s *DashboardService) GetRankings(ctx context.Context, input DashboardQueryInput) (*DashboardRankingsResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardRankingsResponse{}, nil
	}

	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	limit := s.topProductsLimit
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("dashboard:rankings:%s:%d:%d:%s:%d",
		window.rangeKey,
		window.startAt.Unix(),
		window.endAt.Unix(),
		window.timezone,
		limit,
	)
	if !input.ForceRefresh {
		var cached DashboardRankingsResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetTopProducts(window.startAt, window.endAt, limit)
	if err != nil {
		return nil, err
	}

	products := make([]DashboardProductRanking, 0, len(rows))
	for _, item := range rows {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = "-"
		}
		products = append(products, DashboardProductRanking{
			ProductID:  item.ProductID,
			Name:       name,
			Orders:     item.Orders,
			Quantity:   item.Quantity,
			PaidAmount: formatMoneyValue(item.PaidAmount),
		})
	}

	response := &DashboardRankingsResponse{
		Range:       window.rangeKey,
		From:        window.startAt.Format(time.RFC3339),
		To:          window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone:    window.timezone,
		TopProducts: products,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

func resolveDashboardWindow(input DashboardQueryInput, now time.Time) (dashboardWindow, error) {
	rangeKey := strings.ToLower(strings.TrimSpace(input.Range))
	if rangeKey == "" {
		rangeKey = "7d"
	}

	timezone := strings.TrimSpace(input.Timezone)
	location := time.Local
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			location = parsed
		} else {
			timezone = ""
		}
	}
	if timezone == "" {
		timezone = location.String()
	}

	localNow := now.In(location)
	todayStart := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)
	window := dashboardWindow{rangeKey: rangeKey, timezone: timezone}

	switch rangeKey {
	case "today":
		window.startAt = todayStart
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "7d":
		window.startAt = todayStart.AddDate(0, 0, -6)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "30d":
		window.startAt = todayStart.AddDate(0, 0, -29)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "custom":
		if input.From == nil || input.To == nil {
			return dashboardWindow{}, ErrDashboardRangeInvalid
		}
		startAt := input.From.In(location)
		endAt := input.To.In(location)
		if endAt.Before(startAt) {
			return dashboardWindow{}, ErrDashboardRangeInvalid
		}
		if endAt.Sub(startAt) > time.Hour*24*dashboardCustomMaxDays {
			return dashboardWindow{}, ErrDashboardRangeInvalid
		}
		window.startAt = startAt
		window.endAt = endAt.Add(time.Second)
	default:
		return dashboardWindow{}, ErrDashboardRangeInvalid
	}

	if !window.endAt.After(window.startAt) {
		return dashboardWindow{}, ErrDashboardRangeInvalid
	}
	return window, nil
}

func formatMoneyValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatPercentValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func buildDashboardAlerts(overview repository.DashboardOverviewRow, stockStats repository.DashboardStockStatsRow) []DashboardAlertItem {
	alerts := make([]DashboardAlertItem, 0, 3)
	if stockStats.OutOfStockProducts > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "out_of_stock_products", Level: "error", Value: stockStats.OutOfStockProducts})
	}
	if stockStats.LowStockProducts > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "low_stock_products", Level: "warning", Value: stockStats.LowStockProducts})
	}
	if overview.PendingOrders > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "pending_orders", Level: "warning", Value: overview.PendingOrders})
	}
	return alerts
}
