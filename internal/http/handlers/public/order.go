package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/repository"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest checkout request
type CheckoutRequest struct {
	PromoCode string `json:"promo_code"`
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, key: "error.insufficient_stock"},
	{target: service.ErrInsufficientBalance, code: response.CodeBadRequest, key: "error.insufficient_balance"},
	{target: service.ErrPromoNotFound, code: response.CodeBadRequest, key: "error.promo_not_found"},
	{target: service.ErrPromoInactive, code: response.CodeBadRequest, key: "error.promo_inactive"},
	{target: service.ErrCustomerNotFound, code: response.CodeNotFound, key: "error.customer_not_found"},
}

// Checkout turns the cart into a paid order
func (h *Handler) Checkout(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		CustomerID: customer.ID,
		PromoCode:  req.PromoCode,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
		return
	}
	response.Success(c, order)
}

// ListOrders the caller's orders
func (h *Handler) ListOrders(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByCustomer(repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customer.ID,
		Status:     strings.TrimSpace(c.Query("status")),
		OrderNo:    strings.TrimSpace(c.Query("order_no")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder one of the caller's orders
func (h *Handler) GetOrder(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByCustomer(uint(orderID), customer.ID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, order)
}

// GetOrderByOrderNo one of the caller's orders looked up by number
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByCustomerOrderNo(orderNo, customer.ID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, order)
}
