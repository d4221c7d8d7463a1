package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "user-auth-service-test-secret-key-0123456789"
	cfg.JWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 6}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	return NewUserAuthService(cfg, userRepo, customerRepo), db
}

func TestUserAuthServiceRegisterCustomer(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, token, expiresAt, err := svc.RegisterCustomer(RegisterInput{
		FullName: " Budi Santoso ",
		Email:    "Budi@Example.com",
		Password: "rahasia123",
		Phone:    "0812-3456-7890",
		Address:  "Jl. Merdeka No. 1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.FullName != "Budi Santoso" || user.Email != "budi@example.com" {
		t.Fatalf("input not normalized: %+v", user)
	}
	if user.Role != constants.RoleCustomer || user.Status != constants.UserStatusActive {
		t.Fatalf("unexpected role/status: %s/%s", user.Role, user.Status)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("token not issued: %q expires %v", token, expiresAt)
	}

	var customer models.Customer
	if err := db.Where("user_id = ?", user.ID).First(&customer).Error; err != nil {
		t.Fatalf("customer profile not created: %v", err)
	}
	if !customer.Balance.Decimal.IsZero() {
		t.Fatalf("new customer should start at zero balance, got %s", customer.Balance.String())
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestUserAuthServiceRegisterValidation(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	base := RegisterInput{
		FullName: "Budi Santoso",
		Email:    "budi2@example.com",
		Password: "rahasia123",
	}

	bad := base
	bad.FullName = "  "
	if _, _, _, err := svc.RegisterCustomer(bad); !errors.Is(err, ErrInvalidFullName) {
		t.Fatalf("expected invalid full name, got: %v", err)
	}

	bad = base
	bad.Email = "not-an-email"
	if _, _, _, err := svc.RegisterCustomer(bad); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got: %v", err)
	}

	bad = base
	bad.Password = "x"
	if _, _, _, err := svc.RegisterCustomer(bad); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got: %v", err)
	}

	bad = base
	bad.Phone = "12345"
	if _, _, _, err := svc.RegisterCustomer(bad); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected invalid phone, got: %v", err)
	}

	if _, _, _, err := svc.RegisterCustomer(base); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.RegisterCustomer(base); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken, got: %v", err)
	}
}

func TestUserAuthServiceLogin(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.RegisterCustomer(RegisterInput{
		FullName: "Budi Santoso",
		Email:    "budi3@example.com",
		Password: "rahasia123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, _, err := svc.Login("BUDI3@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user.LastLoginAt == nil {
		t.Fatalf("login did not issue token or stamp last login")
	}

	if _, _, _, err := svc.Login("budi3@example.com", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "rahasia123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}

	if _, err := svc.SetUserStatus(user.ID, constants.UserStatusDisabled); err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if _, _, _, err := svc.Login("budi3@example.com", "rahasia123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected user disabled, got: %v", err)
	}
}

func TestUserAuthServiceChangePassword(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.RegisterCustomer(RegisterInput{
		FullName: "Budi Santoso",
		Email:    "budi4@example.com",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "salah", "barubanget1"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected invalid password, got: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "rahasia123", "x"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "rahasia123", "barubanget1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, _, err := svc.Login("budi4@example.com", "barubanget1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUserAuthServiceUpdateProfile(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.RegisterCustomer(RegisterInput{
		FullName: "Budi Santoso",
		Email:    "budi5@example.com",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{}); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("expected profile empty, got: %v", err)
	}

	address := " Jl. Baru No. 2 "
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Address: &address})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Address != "Jl. Baru No. 2" {
		t.Fatalf("address not trimmed: %q", updated.Address)
	}

	badPhone := "abc"
	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Phone: &badPhone}); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected invalid phone, got: %v", err)
	}
}

func TestUserAuthServiceSetUserStatus(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.RegisterCustomer(RegisterInput{
		FullName: "Budi Santoso",
		Email:    "budi6@example.com",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.SetUserStatus(user.ID, "sleeping"); !errors.Is(err, ErrInvalidUserStatus) {
		t.Fatalf("expected invalid user status, got: %v", err)
	}
	updated, err := svc.SetUserStatus(user.ID, " Disabled ")
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if updated.Status != constants.UserStatusDisabled {
		t.Fatalf("status not normalized: %s", updated.Status)
	}
	if _, err := svc.SetUserStatus(user.ID+100, constants.UserStatusActive); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
}
