package public

import (
	handlershared "github.com/joymarket/joymarket/internal/http/handlers/shared"
	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/models"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// getCustomer resolves the balance account behind the authenticated
// user. Customer-only routes call this first.
func (h *Handler) getCustomer(c *gin.Context) (*models.Customer, bool) {
	uid, ok := getUserID(c)
	if !ok {
		return nil, false
	}
	customer, err := h.CustomerService.GetByUserID(uid)
	if err != nil {
		respondError(c, response.CodeNotFound, "error.customer_not_found", err)
		return nil, false
	}
	return customer, true
}
