package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/repository"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest product create/update request
type ProductRequest struct {
	Name      string `json:"name" binding:"required"`
	Price     string `json:"price" binding:"required"`
	Stock     *int   `json:"stock"`
	Category  string `json:"category"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// SetStockRequest stock replacement request
type SetStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// ListProducts catalog listing including inactive products
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListAdmin(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct product detail
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.GetAdmin(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a catalog entry
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, ok := h.buildProductInput(c, req)
	if !ok {
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		h.respondProductError(c, err, "error.product_create_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProduct edits a catalog entry
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, ok := h.buildProductInput(c, req)
	if !ok {
		return
	}

	product, err := h.ProductService.Update(productID, input)
	if err != nil {
		h.respondProductError(c, err, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct pulls a product from the catalog
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(productID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// SetProductStock replaces the stock count
func (h *Handler) SetProductStock(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.SetStock(productID, req.Stock)
	if err != nil {
		h.respondProductError(c, err, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}

func (h *Handler) buildProductInput(c *gin.Context, req ProductRequest) (service.ProductInput, bool) {
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid", err)
		return service.ProductInput{}, false
	}
	return service.ProductInput{
		Name:      req.Name,
		Price:     price,
		Stock:     req.Stock,
		Category:  req.Category,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	}, true
}

func (h *Handler) respondProductError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrProductInvalid):
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
	case errors.Is(err, service.ErrStockInvalid):
		respondError(c, response.CodeBadRequest, "error.stock_invalid", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}
