package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/cache"
	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig storefront bootstrap configuration
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	currency := constants.SiteCurrencyDefault
	locale := constants.LocaleIDID
	if h.Config != nil {
		if trimmed := strings.TrimSpace(h.Config.Site.Currency); trimmed != "" {
			currency = strings.ToUpper(trimmed)
		}
		if trimmed := strings.TrimSpace(h.Config.Site.DefaultLocale); trimmed != "" {
			locale = trimmed
		}
	}

	data := map[string]interface{}{
		"currency":       currency,
		"default_locale": locale,
		"locales":        constants.SupportedLocales,
		"captcha": map[string]interface{}{
			"login":    h.CaptchaService != nil && h.CaptchaService.IsSceneEnabled(service.CaptchaSceneLogin),
			"register": h.CaptchaService != nil && h.CaptchaService.IsSceneEnabled(service.CaptchaSceneRegister),
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// GetProducts active catalog listing
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	category := strings.TrimSpace(c.Query("category"))
	search := strings.TrimSpace(c.Query("search"))

	products, total, err := h.ProductService.ListPublic(category, search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct active product detail
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.GetPublic(uint(productID))
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
