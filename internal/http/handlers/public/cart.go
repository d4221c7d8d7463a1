package public

import (
	"errors"
	"strconv"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest cart line request
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart the caller's cart with its subtotal
func (h *Handler) GetCart(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	detail, err := h.CartService.Get(customer.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem puts a product in the cart; the same product merges
// quantities, a different product is rejected.
func (h *Handler) AddCartItem(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.CartService.Add(service.UpsertCartInput{
		CustomerID: customer.ID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateCartItem replaces the quantity of the carted line
func (h *Handler) UpdateCartItem(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.CartService.EditQuantity(service.UpsertCartInput{
		CustomerID: customer.ID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteCartItem drops the carted line
func (h *Handler) DeleteCartItem(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_cart_item", nil)
		return
	}

	if err := h.CartService.Remove(customer.ID, uint(productID)); err != nil {
		if errors.Is(err, service.ErrInvalidCartItem) {
			respondError(c, response.CodeBadRequest, "error.invalid_cart_item", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCartItem):
		respondError(c, response.CodeBadRequest, "error.invalid_cart_item", nil)
	case errors.Is(err, service.ErrProductNotAvailable):
		respondError(c, response.CodeBadRequest, "error.product_not_available", nil)
	case errors.Is(err, service.ErrCartHoldsOtherProduct):
		respondError(c, response.CodeBadRequest, "error.cart_holds_other_product", nil)
	case errors.Is(err, service.ErrInsufficientStock):
		respondError(c, response.CodeBadRequest, "error.insufficient_stock", nil)
	default:
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
	}
}
