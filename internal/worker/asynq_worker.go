package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/provider"
	"github.com/joymarket/joymarket/internal/queue"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer background task consumer
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers all task handlers
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreated, c.handleOrderCreated)
	mux.HandleFunc(queue.TaskDeliveryAssigned, c.handleDeliveryAssigned)
	mux.HandleFunc(queue.TaskDeliveryDelivered, c.handleDeliveryDelivered)
}

func (c *Consumer) handleOrderCreated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_created_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_created_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_created_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := c.resolveCustomerEmail(order.CustomerID)
	if receiverEmail == "" {
		logger.Debugw("worker_order_created_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		return nil
	}
	input := service.OrderEmailInput{
		OrderNo:  order.OrderNo,
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	}
	if err := c.EmailService.SendOrderCreatedEmail(receiverEmail, input, c.emailLocale()); err != nil {
		return c.dropOrRetryEmailError("worker_order_created_email_failed", order.OrderNo, receiverEmail, err)
	}
	return nil
}

func (c *Consumer) handleDeliveryAssigned(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.DeliveryAssignedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_delivery_assigned_unmarshal_failed", "error", err)
		return err
	}
	if payload.DeliveryID == 0 {
		logger.Debugw("worker_delivery_assigned_skip_invalid_payload", "delivery_id", payload.DeliveryID)
		return nil
	}
	delivery, err := c.DeliveryRepo.GetByID(payload.DeliveryID)
	if err != nil {
		logger.Warnw("worker_delivery_assigned_fetch_failed", "delivery_id", payload.DeliveryID, "error", err)
		return err
	}
	if delivery == nil {
		logger.Debugw("worker_delivery_assigned_skip_not_found", "delivery_id", payload.DeliveryID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(delivery.OrderID)
	if err != nil {
		logger.Warnw("worker_delivery_assigned_fetch_order_failed", "order_id", delivery.OrderID, "error", err)
		return err
	}
	if order == nil {
		return nil
	}
	receiverEmail := c.resolveCustomerEmail(order.CustomerID)
	if receiverEmail == "" || c.EmailService == nil {
		return nil
	}
	courierName := resolveCourierName(delivery)
	if err := c.EmailService.SendDeliveryAssignedEmail(receiverEmail, order.OrderNo, courierName, c.emailLocale()); err != nil {
		return c.dropOrRetryEmailError("worker_delivery_assigned_email_failed", order.OrderNo, receiverEmail, err)
	}
	return nil
}

func (c *Consumer) handleDeliveryDelivered(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.DeliveryDeliveredPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_delivery_delivered_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_delivery_delivered_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_delivery_delivered_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		return nil
	}
	receiverEmail := c.resolveCustomerEmail(order.CustomerID)
	if receiverEmail == "" || c.EmailService == nil {
		return nil
	}
	if err := c.EmailService.SendDeliveryDeliveredEmail(receiverEmail, order.OrderNo, c.emailLocale()); err != nil {
		return c.dropOrRetryEmailError("worker_delivery_delivered_email_failed", order.OrderNo, receiverEmail, err)
	}
	return nil
}

func (c *Consumer) resolveCustomerEmail(customerID uint) string {
	if customerID == 0 {
		return ""
	}
	customer, err := c.CustomerRepo.GetByID(customerID)
	if err != nil {
		logger.Warnw("worker_fetch_customer_failed", "customer_id", customerID, "error", err)
		return ""
	}
	if customer == nil || customer.User == nil {
		return ""
	}
	return strings.TrimSpace(customer.User.Email)
}

func (c *Consumer) emailLocale() string {
	if c.Config == nil {
		return ""
	}
	return c.Config.Site.DefaultLocale
}

// dropOrRetryEmailError keeps the queue from retrying errors that will
// never succeed, like a disabled mailer or a rejected recipient.
func (c *Consumer) dropOrRetryEmailError(event, orderNo, receiverEmail string, err error) error {
	switch {
	case errors.Is(err, service.ErrEmailServiceDisabled),
		errors.Is(err, service.ErrEmailServiceNotConfigured),
		errors.Is(err, service.ErrEmailRecipientRejected),
		errors.Is(err, service.ErrInvalidEmail):
		logger.Debugw(event+"_dropped", "order_no", orderNo, "receiver_email", receiverEmail, "error", err)
		return nil
	default:
		logger.Warnw(event, "order_no", orderNo, "receiver_email", receiverEmail, "error", err)
		return err
	}
}

func resolveCourierName(delivery *models.Delivery) string {
	if delivery == nil || delivery.Courier == nil || delivery.Courier.User == nil {
		return "-"
	}
	name := strings.TrimSpace(delivery.Courier.User.FullName)
	if name == "" {
		return "-"
	}
	return name
}
