package queue

import (
	"encoding/json"

	"github.com/joymarket/joymarket/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreated order placed notification task
	TaskOrderCreated = constants.TaskOrderCreated
	// TaskDeliveryAssigned delivery assignment notification task
	TaskDeliveryAssigned = constants.TaskDeliveryAssigned
	// TaskDeliveryDelivered delivery completion notification task
	TaskDeliveryDelivered = constants.TaskDeliveryDelivered
)

// OrderCreatedPayload order placed task payload
type OrderCreatedPayload struct {
	OrderID uint `json:"order_id"`
}

// DeliveryAssignedPayload delivery assignment task payload
type DeliveryAssignedPayload struct {
	DeliveryID uint `json:"delivery_id"`
	OrderID    uint `json:"order_id"`
	CourierID  uint `json:"courier_id"`
}

// DeliveryDeliveredPayload delivery completion task payload
type DeliveryDeliveredPayload struct {
	DeliveryID uint `json:"delivery_id"`
	OrderID    uint `json:"order_id"`
}

// NewOrderCreatedTask creates an order placed task
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}

// NewDeliveryAssignedTask creates a delivery assignment task
func NewDeliveryAssignedTask(payload DeliveryAssignedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeliveryAssigned, body), nil
}

// NewDeliveryDeliveredTask creates a delivery completion task
func NewDeliveryDeliveredTask(payload DeliveryDeliveredPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeliveryDelivered, body), nil
}
