package admin

import (
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListLoginLogs paginated login attempt listing
func (h *Handler) ListLoginLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.UserLoginLogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Email:      strings.TrimSpace(c.Query("email")),
		Status:     strings.TrimSpace(c.Query("status")),
		FailReason: strings.TrimSpace(c.Query("fail_reason")),
		ClientIP:   strings.TrimSpace(c.Query("client_ip")),
	}
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		if userID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.UserID = uint(userID)
		}
	}

	logs, total, err := h.UserLoginLogService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.login_log_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, logs, pagination)
}
