package service

import "github.com/joymarket/joymarket/internal/constants"

// Forward-only status flows. An order moves pending -> in progress ->
// delivered and never back; deliveries mirror the same flow.
var allowedOrderTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusInProgress: true,
	},
	constants.OrderStatusInProgress: {
		constants.OrderStatusDelivered: true,
	},
}

var allowedDeliveryTransitions = map[string]map[string]bool{
	constants.DeliveryStatusPending: {
		constants.DeliveryStatusInProgress: true,
	},
	constants.DeliveryStatusInProgress: {
		constants.DeliveryStatusDelivered: true,
	},
}

func canTransitionOrder(from, to string) bool {
	targets, ok := allowedOrderTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

func canTransitionDelivery(from, to string) bool {
	targets, ok := allowedDeliveryTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}
