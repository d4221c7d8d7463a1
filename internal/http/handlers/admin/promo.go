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

// PromoRequest promo create/update request
type PromoRequest struct {
	Code            string `json:"code" binding:"required"`
	DiscountPercent string `json:"discount_percent" binding:"required"`
	Headline        string `json:"headline"`
	IsActive        *bool  `json:"is_active"`
}

// ListPromos paginated promo listing
func (h *Handler) ListPromos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.PromoListFilter{
		Page:     page,
		PageSize: pageSize,
		Code:     strings.TrimSpace(c.Query("code")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	promos, total, err := h.PromoService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.promo_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, promos, pagination)
}

// GetPromo promo detail
func (h *Handler) GetPromo(c *gin.Context) {
	promoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	promo, err := h.PromoService.GetByID(promoID)
	if err != nil {
		if errors.Is(err, service.ErrPromoNotFound) {
			respondError(c, response.CodeNotFound, "error.promo_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.promo_fetch_failed", err)
		return
	}
	response.Success(c, promo)
}

// CreatePromo adds a promo code
func (h *Handler) CreatePromo(c *gin.Context) {
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, ok := buildPromoInput(c, req)
	if !ok {
		return
	}

	promo, err := h.PromoService.Create(input)
	if err != nil {
		h.respondPromoError(c, err, "error.promo_create_failed")
		return
	}
	response.Success(c, promo)
}

// UpdatePromo edits a promo code
func (h *Handler) UpdatePromo(c *gin.Context) {
	promoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, ok := buildPromoInput(c, req)
	if !ok {
		return
	}

	promo, err := h.PromoService.Update(promoID, input)
	if err != nil {
		h.respondPromoError(c, err, "error.promo_update_failed")
		return
	}
	response.Success(c, promo)
}

// DeletePromo removes a promo code
func (h *Handler) DeletePromo(c *gin.Context) {
	promoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PromoService.Delete(promoID); err != nil {
		if errors.Is(err, service.ErrPromoNotFound) {
			respondError(c, response.CodeNotFound, "error.promo_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.promo_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func buildPromoInput(c *gin.Context, req PromoRequest) (service.PromoInput, bool) {
	percent, err := decimal.NewFromString(strings.TrimSpace(req.DiscountPercent))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.promo_percent_invalid", err)
		return service.PromoInput{}, false
	}
	return service.PromoInput{
		Code:            req.Code,
		DiscountPercent: percent,
		Headline:        req.Headline,
		IsActive:        req.IsActive,
	}, true
}

func (h *Handler) respondPromoError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrPromoNotFound):
		respondError(c, response.CodeNotFound, "error.promo_not_found", nil)
	case errors.Is(err, service.ErrPromoCodeExists):
		respondError(c, response.CodeBadRequest, "error.promo_code_exists", nil)
	case errors.Is(err, service.ErrPromoPercentInvalid):
		respondError(c, response.CodeBadRequest, "error.promo_percent_invalid", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}
