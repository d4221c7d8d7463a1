package courier

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/joymarket/joymarket/internal/http/handlers/shared"
	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// getCourier resolves the courier profile behind the authenticated user
func (h *Handler) getCourier(c *gin.Context) (*models.Courier, bool) {
	uid, ok := getUserID(c)
	if !ok {
		return nil, false
	}
	courier, err := h.CourierService.GetByUserID(uid)
	if err != nil {
		respondError(c, response.CodeNotFound, "error.courier_not_found", err)
		return nil, false
	}
	return courier, true
}

// ListMyDeliveries the caller's assigned deliveries
func (h *Handler) ListMyDeliveries(c *gin.Context) {
	courier, ok := h.getCourier(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	deliveries, total, err := h.DeliveryService.ListByCourier(courier.ID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.delivery_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, deliveries, pagination)
}

// AdvanceDeliveryRequest delivery progression request
type AdvanceDeliveryRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdvanceMyDelivery moves one of the caller's deliveries forward.
// Deliveries assigned to other couriers read as not found.
func (h *Handler) AdvanceMyDelivery(c *gin.Context) {
	courier, ok := h.getCourier(c)
	if !ok {
		return
	}

	deliveryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || deliveryID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdvanceDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	delivery, err := h.DeliveryService.AdvanceStatus(service.AdvanceInput{
		DeliveryID: uint(deliveryID),
		CourierID:  courier.ID,
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
