package service

import (
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"
)

// UserLoginLogService records and lists login attempts
type UserLoginLogService struct {
	repo repository.UserLoginLogRepository
}

// NewUserLoginLogService creates the login log service
func NewUserLoginLogService(repo repository.UserLoginLogRepository) *UserLoginLogService {
	return &UserLoginLogService{repo: repo}
}

// LoginAttempt one login attempt, successful or not
type LoginAttempt struct {
	UserID     uint
	Email      string
	Status     string
	FailReason string
	ClientIP   string
	UserAgent  string
	RequestID  string
}

// Record persists a login attempt. Logging failures must never break
// the login flow, so errors are swallowed after a warn.
func (s *UserLoginLogService) Record(attempt LoginAttempt) {
	if s == nil || s.repo == nil {
		return
	}
	status := strings.TrimSpace(attempt.Status)
	if status == "" {
		status = constants.LoginLogStatusFailed
	}
	entry := &models.UserLoginLog{
		UserID:     attempt.UserID,
		Email:      strings.ToLower(strings.TrimSpace(attempt.Email)),
		Status:     status,
		FailReason: strings.TrimSpace(attempt.FailReason),
		ClientIP:   strings.TrimSpace(attempt.ClientIP),
		UserAgent:  attempt.UserAgent,
		RequestID:  attempt.RequestID,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(entry); err != nil {
		logger.Warnw("login_log_write_failed",
			"email", entry.Email,
			"status", entry.Status,
			"error", err,
		)
	}
}

// RecordSuccess records a successful login
func (s *UserLoginLogService) RecordSuccess(user *models.User, clientIP, userAgent, requestID string) {
	if user == nil {
		return
	}
	s.Record(LoginAttempt{
		UserID:    user.ID,
		Email:     user.Email,
		Status:    constants.LoginLogStatusSuccess,
		ClientIP:  clientIP,
		UserAgent: userAgent,
		RequestID: requestID,
	})
}

// RecordFailure records a failed login with a machine-readable reason
func (s *UserLoginLogService) RecordFailure(email, failReason, clientIP, userAgent, requestID string) {
	s.Record(LoginAttempt{
		Email:      email,
		Status:     constants.LoginLogStatusFailed,
		FailReason: failReason,
		ClientIP:   clientIP,
		UserAgent:  userAgent,
		RequestID:  requestID,
	})
}

// ListAdmin admin-side login log listing
func (s *UserLoginLogService) ListAdmin(filter repository.UserLoginLogListFilter) ([]models.UserLoginLog, int64, error) {
	return s.repo.ListAdmin(filter)
}

// ListByUser a user's own login history
func (s *UserLoginLogService) ListByUser(userID uint, page, pageSize int) ([]models.UserLoginLog, int64, error) {
	if userID == 0 {
		return nil, 0, ErrNotFound
	}
	return s.repo.ListByUser(userID, page, pageSize)
}
