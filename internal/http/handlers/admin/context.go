package admin

import (
	"strconv"

	"github.com/joymarket/joymarket/internal/http/response"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive uint path parameter or responds 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(value), true
}
