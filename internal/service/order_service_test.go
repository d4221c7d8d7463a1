package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.CartItem{},
		&models.Promo{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
		&models.BalanceTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	promoService := NewPromoService(promoRepo)
	ledger := NewLedgerService(customerRepo, 10000)
	return NewOrderService(orderRepo, productRepo, cartRepo, promoRepo, promoService, ledger, nil, "IDR"), db
}

type checkoutFixture struct {
	customer *models.Customer
	product  *models.Product
}

func seedCheckout(t *testing.T, db *gorm.DB, userID uint, balance, price decimal.Decimal, stock, cartQty int) checkoutFixture {
	t.Helper()
	customer := createLedgerCustomer(t, db, userID, balance)
	product := &models.Product{
		Name:     fmt.Sprintf("Produk %d", userID),
		Price:    models.NewMoneyFromDecimal(price),
		Stock:    stock,
		Category: "food",
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if cartQty > 0 {
		item := models.CartItem{
			CustomerID: customer.ID,
			ProductID:  product.ID,
			Quantity:   cartQty,
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}
	return checkoutFixture{customer: customer, product: product}
}

func TestOrderServiceCheckout(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 301, decimal.NewFromInt(50000), decimal.NewFromInt(20000), 10, 2)

	order, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "JM") {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("unexpected status: %s", order.Status)
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(40000)) {
		t.Fatalf("unexpected total: %s", order.TotalAmount.String())
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", order.Items)
	}

	var product models.Product
	if err := db.First(&product, fx.product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if product.Stock != 8 {
		t.Fatalf("expected stock 8, got %d", product.Stock)
	}

	var customer models.Customer
	if err := db.First(&customer, fx.customer.ID).Error; err != nil {
		t.Fatalf("reload customer failed: %v", err)
	}
	if !customer.Balance.Decimal.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected balance 10000, got %s", customer.Balance.String())
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("customer_id = ?", fx.customer.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("expected cart cleared, got %d rows", cartCount)
	}
}

func TestOrderServiceCheckoutInsufficientBalanceRollsBack(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 302, decimal.NewFromInt(30000), decimal.NewFromInt(20000), 10, 2)

	_, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got: %v", err)
	}

	var product models.Product
	if err := db.First(&product, fx.product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if product.Stock != 10 {
		t.Fatalf("stock changed after rollback: %d", product.Stock)
	}

	var orderCount, cartCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if err := db.Model(&models.CartItem{}).Where("customer_id = ?", fx.customer.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if orderCount != 0 || cartCount != 1 {
		t.Fatalf("expected full rollback, orders=%d cart=%d", orderCount, cartCount)
	}
}

func TestOrderServiceCheckoutWithPromo(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 303, decimal.NewFromInt(50000), decimal.NewFromInt(20000), 10, 2)
	promo := models.Promo{
		Code:            "SAVE10",
		DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		IsActive:        true,
	}
	if err := db.Create(&promo).Error; err != nil {
		t.Fatalf("create promo failed: %v", err)
	}

	order, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID, PromoCode: "SAVE10"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !order.DiscountAmount.Decimal.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("unexpected discount: %s", order.DiscountAmount.String())
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(36000)) {
		t.Fatalf("unexpected total: %s", order.TotalAmount.String())
	}
	if order.PromoID == nil || *order.PromoID != promo.ID {
		t.Fatalf("promo not recorded: %+v", order.PromoID)
	}
}

func TestOrderServiceCheckoutRejectsInactivePromo(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 304, decimal.NewFromInt(50000), decimal.NewFromInt(20000), 10, 2)
	promo := models.Promo{
		Code:            "EXPIRED50",
		DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
		IsActive:        false,
	}
	if err := db.Create(&promo).Error; err != nil {
		t.Fatalf("create promo failed: %v", err)
	}

	if _, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID, PromoCode: "EXPIRED50"}); !errors.Is(err, ErrPromoInactive) {
		t.Fatalf("expected promo inactive, got: %v", err)
	}
	if _, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID, PromoCode: "NOPE"}); !errors.Is(err, ErrPromoNotFound) {
		t.Fatalf("expected promo not found, got: %v", err)
	}
}

func TestOrderServiceCheckoutEmptyCart(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 305, decimal.NewFromInt(50000), decimal.NewFromInt(20000), 10, 0)

	if _, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID}); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected cart empty, got: %v", err)
	}
}

func TestOrderServiceCheckoutInsufficientStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 306, decimal.NewFromInt(500000), decimal.NewFromInt(20000), 2, 5)

	if _, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got: %v", err)
	}
	var product models.Product
	if err := db.First(&product, fx.product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if product.Stock != 2 {
		t.Fatalf("stock changed after rejected checkout: %d", product.Stock)
	}
}

func TestOrderServiceGetByCustomerScoped(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	fx := seedCheckout(t, db, 307, decimal.NewFromInt(50000), decimal.NewFromInt(20000), 10, 2)
	other := createLedgerCustomer(t, db, 308, decimal.Zero)

	order, err := svc.Checkout(CheckoutInput{CustomerID: fx.customer.ID})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := svc.GetByCustomer(order.ID, other.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found for other customer, got: %v", err)
	}
	got, err := svc.GetByCustomerOrderNo(order.OrderNo, fx.customer.ID)
	if err != nil {
		t.Fatalf("get by order no failed: %v", err)
	}
	if got.ID != order.ID {
		t.Fatalf("unexpected order: %d", got.ID)
	}
}
