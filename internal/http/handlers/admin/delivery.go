package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/repository"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignDeliveryRequest delivery assignment request
type AssignDeliveryRequest struct {
	OrderID   uint   `json:"order_id" binding:"required"`
	CourierID uint   `json:"courier_id" binding:"required"`
	Address   string `json:"address"`
}

// AdvanceDeliveryRequest delivery progression request
type AdvanceDeliveryRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListDeliveries admin-side delivery listing
func (h *Handler) ListDeliveries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.DeliveryListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("courier_id")); raw != "" {
		if courierID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CourierID = uint(courierID)
		}
	}
	if raw := strings.TrimSpace(c.Query("order_id")); raw != "" {
		if orderID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.OrderID = uint(orderID)
		}
	}

	deliveries, total, err := h.DeliveryService.ListForAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.delivery_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, deliveries, pagination)
}

// AssignDelivery assigns a pending order to a courier
func (h *Handler) AssignDelivery(c *gin.Context) {
	var req AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	delivery, err := h.DeliveryService.Assign(service.AssignInput{
		OrderID:   req.OrderID,
		CourierID: req.CourierID,
		Address:   req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		case errors.Is(err, service.ErrCourierNotFound):
			respondError(c, response.CodeNotFound, "error.courier_not_found", nil)
		case errors.Is(err, service.ErrDeliveryExists):
			respondError(c, response.CodeBadRequest, "error.delivery_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.delivery_assign_failed", err)
		}
		return
	}
	response.Success(c, delivery)
}

// AdvanceDelivery moves any delivery forward on behalf of operations
func (h *Handler) AdvanceDelivery(c *gin.Context) {
	deliveryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AdvanceDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	delivery, err := h.DeliveryService.AdvanceStatus(service.AdvanceInput{
		DeliveryID: deliveryID,
		ToStatus:   strings.TrimSpace(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeliveryNotFound):
			respondError(c, response.CodeNotFound, "error.delivery_not_found", nil)
		case errors.Is(err, service.ErrDeliveryStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.delivery_status_invalid", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.delivery_update_failed", err)
		}
		return
	}
	response.Success(c, delivery)
}
