package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/queue"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService checkout and order queries
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	cartRepo     repository.CartRepository
	promoRepo    repository.PromoRepository
	promoService *PromoService
	ledger       *LedgerService
	queueClient  *queue.Client
	currency     string
}

// NewOrderService creates the order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, promoRepo repository.PromoRepository, promoService *PromoService, ledger *LedgerService, queueClient *queue.Client, currency string) *OrderService {
	if strings.TrimSpace(currency) == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		promoRepo:    promoRepo,
		promoService: promoService,
		ledger:       ledger,
		queueClient:  queueClient,
		currency:     currency,
	}
}

// CheckoutInput checkout request
type CheckoutInput struct {
	CustomerID uint
	PromoCode  string
}

// Checkout turns the cart into an order. The whole flow runs in one
// database transaction: price the cart, reserve stock, write the order,
// debit the balance, clear the cart. Any failure rolls everything back.
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.CustomerID == 0 {
		return nil, ErrCustomerNotFound
	}

	var created *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		promoRepo := s.promoRepo.WithTx(tx)

		item, err := cartRepo.GetByCustomer(input.CustomerID)
		if err != nil {
			return err
		}
		if item == nil || item.Quantity <= 0 {
			return ErrCartEmpty
		}

		product, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.IsActive {
			return ErrProductNotAvailable
		}

		// Unlike cart pricing, checkout rejects bad codes outright.
		var promo *models.Promo
		code := strings.TrimSpace(input.PromoCode)
		if code != "" {
			promo, err = promoRepo.GetByCode(code)
			if err != nil {
				return err
			}
			if promo == nil {
				return ErrPromoNotFound
			}
			if !promo.IsActive {
				return ErrPromoInactive
			}
		}

		original := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		discount := s.promoService.DiscountAmount(promo, original)
		total := original.Sub(discount).Round(2)
		if total.LessThan(decimal.Zero) {
			total = decimal.Zero
		}

		affected, err := productRepo.ReserveStock(item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientStock
		}

		now := time.Now()
		order := &models.Order{
			OrderNo:        generateOrderNo(),
			CustomerID:     input.CustomerID,
			Status:         constants.OrderStatusPending,
			Currency:       s.currency,
			OriginalAmount: models.NewMoneyFromDecimal(original),
			DiscountAmount: models.NewMoneyFromDecimal(discount),
			TotalAmount:    models.NewMoneyFromDecimal(total),
			OrderedAt:      now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if promo != nil {
			order.PromoID = &promo.ID
		}
		items := []models.OrderItem{{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(original),
			CreatedAt:   now,
			UpdatedAt:   now,
		}}
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}

		if _, err := s.ledger.DebitForOrder(tx, input.CustomerID, total, order); err != nil {
			return err
		}

		if err := cartRepo.ClearByCustomer(input.CustomerID); err != nil {
			return err
		}

		order.Items = items
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderCreated(queue.OrderCreatedPayload{OrderID: created.ID}); err != nil {
		logger.Warnw("order_enqueue_created_failed",
			"order_id", created.ID,
			"order_no", created.OrderNo,
			"error", err,
		)
	}
	return created, nil
}

// GetByCustomer fetches a customer's order
func (s *OrderService) GetByCustomer(orderID, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByCustomerOrderNo fetches a customer's order by number
func (s *OrderService) GetByCustomerOrderNo(orderNo string, customerID uint) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndCustomer(orderNo, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByCustomer paginated listing of a customer's orders
func (s *OrderService) ListByCustomer(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.CustomerID == 0 {
		return nil, 0, ErrCustomerNotFound
	}
	return s.orderRepo.ListByCustomer(filter)
}

// ListForAdmin admin-side order listing
func (s *OrderService) ListForAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetForAdmin admin-side order detail
func (s *OrderService) GetForAdmin(orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// advanceOrderStatus moves the order forward inside tx, failing when
// another writer already changed it.
func advanceOrderStatus(orderRepo repository.OrderRepository, order *models.Order, toStatus string, now time.Time) error {
	if order == nil {
		return ErrOrderNotFound
	}
	if !canTransitionOrder(order.Status, toStatus) {
		return ErrOrderStatusInvalid
	}
	updates := map[string]interface{}{"updated_at": now}
	if toStatus == constants.OrderStatusDelivered {
		updates["delivered_at"] = now
	}
	affected, err := orderRepo.UpdateStatusFrom(order.ID, order.Status, toStatus, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderStatusInvalid
	}
	order.Status = toStatus
	return nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("JM%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
