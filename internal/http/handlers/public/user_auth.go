package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/i18n"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest customer registration request
type RegisterRequest struct {
	FullName       string                `json:"full_name" binding:"required"`
	Email          string                `json:"email" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// Register registers a customer account
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if !h.verifyCaptcha(c, service.CaptchaSceneRegister, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.UserAuthService.RegisterCustomer(service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFullName):
			respondError(c, response.CodeBadRequest, "error.invalid_full_name", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, response.CodeBadRequest, "error.email_taken", nil)
		case errors.Is(err, service.ErrInvalidPhone):
			respondError(c, response.CodeBadRequest, "error.invalid_phone", nil)
		case errors.Is(err, service.ErrWeakPassword):
			h.respondWeakPassword(c, err)
		default:
			respondError(c, response.CodeInternal, "error.register_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       userProfileResponse(user),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// LoginRequest login request
type LoginRequest struct {
	Email          string                `json:"email" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// Login authenticates any role and issues a token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonBadRequest)
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(service.CaptchaSceneLogin, req.CaptchaPayload.toServicePayload()); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonCaptchaRequired)
				respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonCaptchaInvalid)
				respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
			default:
				h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonInternalError)
				respondError(c, response.CodeInternal, "error.captcha_verify_failed", captchaErr)
			}
			return
		}
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonInvalidCredentials)
			respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonInvalidCredentials)
			respondError(c, response.CodeUnauthorized, "error.login_invalid", nil)
		case errors.Is(err, service.ErrUserDisabled):
			h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonUserDisabled)
			respondError(c, response.CodeUnauthorized, "error.user_disabled", nil)
		default:
			h.recordLoginFailure(c, req.Email, constants.LoginLogFailReasonInternalError)
			respondError(c, response.CodeInternal, "error.login_failed", err)
		}
		return
	}

	h.UserLoginLogService.RecordSuccess(user, c.ClientIP(), c.GetHeader("User-Agent"), requestID(c))
	response.Success(c, gin.H{
		"user":       userProfileResponse(user),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetCurrentUser returns the caller's profile
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetUserByID(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}
	response.Success(c, userProfileResponse(user))
}

// ProfileUpdateRequest profile update request, absent fields untouched
type ProfileUpdateRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdateProfile edits the caller's profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(uid, service.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileEmpty):
			respondError(c, response.CodeBadRequest, "error.profile_empty", nil)
		case errors.Is(err, service.ErrInvalidPhone):
			respondError(c, response.CodeBadRequest, "error.invalid_phone", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.user_update_failed", err)
		}
		return
	}
	response.Success(c, userProfileResponse(user))
}

// ChangePasswordRequest password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword changes the caller's password
func (h *Handler) ChangePassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.UserAuthService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeBadRequest, "error.password_old_invalid", nil)
		case errors.Is(err, service.ErrWeakPassword):
			h.respondWeakPassword(c, err)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// ListMyLoginLogs the caller's own login history
func (h *Handler) ListMyLoginLogs(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	logs, total, err := h.UserLoginLogService.ListByUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.login_log_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, logs, pagination)
}

// verifyCaptcha enforces a captcha scene and writes the error response
// itself; callers just bail out on false.
func (h *Handler) verifyCaptcha(c *gin.Context, scene string, payload CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	if err := h.CaptchaService.Verify(scene, payload.toServicePayload()); err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaRequired):
			respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
		case errors.Is(err, service.ErrCaptchaInvalid):
			respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.captcha_verify_failed", err)
		}
		return false
	}
	return true
}

func (h *Handler) respondWeakPassword(c *gin.Context, err error) {
	if perr, ok := err.(interface {
		Key() string
		Args() []interface{}
	}); ok {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), perr.Key(), perr.Args()...)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondError(c, response.CodeBadRequest, "error.weak_password", nil)
}

func (h *Handler) recordLoginFailure(c *gin.Context, email, failReason string) {
	if h == nil || h.UserLoginLogService == nil {
		return
	}
	h.UserLoginLogService.RecordFailure(email, failReason, c.ClientIP(), c.GetHeader("User-Agent"), requestID(c))
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if rid, ok := c.Get("request_id"); ok {
		if value, ok := rid.(string); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func userProfileResponse(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"full_name":     user.FullName,
		"email":         user.Email,
		"phone":         user.Phone,
		"address":       user.Address,
		"role":          user.Role,
		"status":        user.Status,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
	}
}
