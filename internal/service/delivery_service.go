package service

import (
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/queue"
	"github.com/joymarket/joymarket/internal/repository"

	"gorm.io/gorm"
)

// DeliveryService delivery assignment and progression
type DeliveryService struct {
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	courierRepo  repository.CourierRepository
	customerRepo repository.CustomerRepository
	queueClient  *queue.Client
}

// NewDeliveryService creates the delivery service
func NewDeliveryService(deliveryRepo repository.DeliveryRepository, orderRepo repository.OrderRepository, courierRepo repository.CourierRepository, customerRepo repository.CustomerRepository, queueClient *queue.Client) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		courierRepo:  courierRepo,
		customerRepo: customerRepo,
		queueClient:  queueClient,
	}
}

// AssignInput delivery assignment request
type AssignInput struct {
	OrderID   uint
	CourierID uint
	Address   string
}

// AdvanceInput delivery status progression request. CourierID zero
// means an admin is acting; otherwise the delivery must belong to that
// courier.
type AdvanceInput struct {
	DeliveryID uint
	CourierID  uint
	ToStatus   string
}

// Assign creates the delivery for a pending order and moves the order
// to in progress, all in one transaction. An order can carry only one
// delivery; a second assignment fails.
func (s *DeliveryService) Assign(input AssignInput) (*models.Delivery, error) {
	if input.OrderID == 0 || input.CourierID == 0 {
		return nil, ErrOrderNotFound
	}

	var created *models.Delivery
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		courierRepo := s.courierRepo.WithTx(tx)

		order, err := orderRepo.GetByID(input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status != constants.OrderStatusPending {
			return ErrOrderStatusInvalid
		}

		courier, err := courierRepo.GetByID(input.CourierID)
		if err != nil {
			return err
		}
		if courier == nil {
			return ErrCourierNotFound
		}

		existing, err := deliveryRepo.GetByOrderID(order.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDeliveryExists
		}

		address := strings.TrimSpace(input.Address)
		if address == "" {
			address = s.resolveCustomerAddress(tx, order.CustomerID)
		}

		now := time.Now()
		delivery := &models.Delivery{
			OrderID:    order.ID,
			CourierID:  courier.ID,
			Status:     constants.DeliveryStatusPending,
			Address:    address,
			AssignedAt: now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := deliveryRepo.Create(delivery); err != nil {
			return err
		}

		if err := advanceOrderStatus(orderRepo, order, constants.OrderStatusInProgress, now); err != nil {
			return err
		}

		delivery.Courier = courier
		created = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueDeliveryAssigned(queue.DeliveryAssignedPayload{
		DeliveryID: created.ID,
		OrderID:    created.OrderID,
		CourierID:  created.CourierID,
	}); err != nil {
		logger.Warnw("delivery_enqueue_assigned_failed",
			"delivery_id", created.ID,
			"order_id", created.OrderID,
			"error", err,
		)
	}
	return created, nil
}

// AdvanceStatus moves a delivery forward and mirrors the order status
// in the same transaction.
func (s *DeliveryService) AdvanceStatus(input AdvanceInput) (*models.Delivery, error) {
	toStatus := strings.ToLower(strings.TrimSpace(input.ToStatus))

	delivery, err := s.deliveryRepo.GetByID(input.DeliveryID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}
	if input.CourierID != 0 && delivery.CourierID != input.CourierID {
		return nil, ErrDeliveryNotFound
	}
	if !canTransitionDelivery(delivery.Status, toStatus) {
		return nil, ErrDeliveryStatusInvalid
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		now := time.Now()
		updates := map[string]interface{}{"updated_at": now}
		if toStatus == constants.DeliveryStatusDelivered {
			updates["delivered_at"] = now
		}
		affected, err := deliveryRepo.UpdateStatusFrom(delivery.ID, delivery.Status, toStatus, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrDeliveryStatusInvalid
		}

		// Delivery completion is what flips the order to delivered;
		// the in-progress leg already happened at assignment.
		if toStatus == constants.DeliveryStatusDelivered {
			order, err := orderRepo.GetByID(delivery.OrderID)
			if err != nil {
				return err
			}
			if order == nil {
				return ErrOrderNotFound
			}
			if err := advanceOrderStatus(orderRepo, order, constants.OrderStatusDelivered, now); err != nil {
				return err
			}
		}

		delivery.Status = toStatus
		if toStatus == constants.DeliveryStatusDelivered {
			delivery.DeliveredAt = &now
		}
		delivery.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if toStatus == constants.DeliveryStatusDelivered {
		if err := s.queueClient.EnqueueDeliveryDelivered(queue.DeliveryDeliveredPayload{
			DeliveryID: delivery.ID,
			OrderID:    delivery.OrderID,
		}); err != nil {
			logger.Warnw("delivery_enqueue_delivered_failed",
				"delivery_id", delivery.ID,
				"order_id", delivery.OrderID,
				"error", err,
			)
		}
	}
	return delivery, nil
}

// GetByID fetches a delivery
func (s *DeliveryService) GetByID(id uint) (*models.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}
	return delivery, nil
}

// GetByOrderID fetches the delivery attached to an order
func (s *DeliveryService) GetByOrderID(orderID uint) (*models.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}
	return delivery, nil
}

// ListForAdmin admin-side delivery listing
func (s *DeliveryService) ListForAdmin(filter repository.DeliveryListFilter) ([]models.Delivery, int64, error) {
	return s.deliveryRepo.List(filter)
}

// ListByCourier a courier's own deliveries
func (s *DeliveryService) ListByCourier(courierID uint, status string, page, pageSize int) ([]models.Delivery, int64, error) {
	if courierID == 0 {
		return nil, 0, ErrCourierNotFound
	}
	return s.deliveryRepo.List(repository.DeliveryListFilter{
		Page:      page,
		PageSize:  pageSize,
		CourierID: courierID,
		Status:    strings.TrimSpace(status),
	})
}

func (s *DeliveryService) resolveCustomerAddress(tx *gorm.DB, customerID uint) string {
	customer, err := s.customerRepo.WithTx(tx).GetByID(customerID)
	if err != nil || customer == nil || customer.User == nil {
		return ""
	}
	return strings.TrimSpace(customer.User.Address)
}
