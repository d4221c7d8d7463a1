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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCourierServiceTest(t *testing.T) (*CourierService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:courier_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Courier{},
		&models.Order{},
		&models.Delivery{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	courierRepo := repository.NewCourierRepository(db)
	userRepo := repository.NewUserRepository(db)
	policy := config.PasswordPolicyConfig{MinLength: 6}
	return NewCourierService(courierRepo, userRepo, policy), db
}

func TestCourierServiceCreate(t *testing.T) {
	svc, db := setupCourierServiceTest(t)

	courier, err := svc.Create(CreateCourierInput{
		FullName:     "Kurnia Wijaya",
		Email:        "Kurnia@Example.com",
		Password:     "rahasia123",
		Phone:        "0812-3456-7890",
		VehicleType:  "Motorcycle",
		VehiclePlate: "b 1234 xyz",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if courier.VehicleType != constants.VehicleTypeMotorcycle {
		t.Fatalf("vehicle type not normalized: %s", courier.VehicleType)
	}
	if courier.VehiclePlate != "B 1234 XYZ" {
		t.Fatalf("plate not normalized: %s", courier.VehiclePlate)
	}
	if courier.User == nil || courier.User.Role != constants.RoleCourier {
		t.Fatalf("unexpected user: %+v", courier.User)
	}
	if courier.User.Email != "kurnia@example.com" {
		t.Fatalf("email not normalized: %s", courier.User.Email)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users failed: %v", err)
	}
	if userCount != 1 {
		t.Fatalf("expected 1 user, got %d", userCount)
	}
}

func TestCourierServiceCreateValidation(t *testing.T) {
	svc, _ := setupCourierServiceTest(t)

	base := CreateCourierInput{
		FullName:     "Kurnia Wijaya",
		Email:        "kurnia2@example.com",
		Password:     "rahasia123",
		VehicleType:  constants.VehicleTypeCar,
		VehiclePlate: "B 5678 ABC",
	}

	bad := base
	bad.VehicleType = "sepeda"
	if _, err := svc.Create(bad); !errors.Is(err, ErrVehicleTypeInvalid) {
		t.Fatalf("expected vehicle type invalid, got: %v", err)
	}

	bad = base
	bad.VehiclePlate = "  "
	if _, err := svc.Create(bad); !errors.Is(err, ErrVehiclePlateInvalid) {
		t.Fatalf("expected vehicle plate invalid, got: %v", err)
	}

	bad = base
	bad.Password = "x"
	if _, err := svc.Create(bad); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got: %v", err)
	}

	if _, err := svc.Create(base); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(base); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken, got: %v", err)
	}
}

func TestCourierServiceUpdateStatus(t *testing.T) {
	svc, _ := setupCourierServiceTest(t)

	courier, err := svc.Create(CreateCourierInput{
		FullName:     "Kurnia Wijaya",
		Email:        "kurnia3@example.com",
		Password:     "rahasia123",
		VehicleType:  constants.VehicleTypeMotorcycle,
		VehiclePlate: "B 1111 AA",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	disabled := constants.UserStatusDisabled
	updated, err := svc.Update(courier.ID, UpdateCourierInput{Status: &disabled})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.User.Status != constants.UserStatusDisabled {
		t.Fatalf("status not updated: %s", updated.User.Status)
	}

	bogus := "sleeping"
	if _, err := svc.Update(courier.ID, UpdateCourierInput{Status: &bogus}); !errors.Is(err, ErrInvalidUserStatus) {
		t.Fatalf("expected invalid user status, got: %v", err)
	}
}

func TestCourierServiceDeleteWithActiveWork(t *testing.T) {
	svc, db := setupCourierServiceTest(t)

	courier, err := svc.Create(CreateCourierInput{
		FullName:     "Kurnia Wijaya",
		Email:        "kurnia4@example.com",
		Password:     "rahasia123",
		VehicleType:  constants.VehicleTypeMotorcycle,
		VehiclePlate: "B 2222 BB",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	customer := createLedgerCustomer(t, db, 501, decimal.Zero)
	order := createPendingOrder(t, db, customer.ID, "JM20260101120000000006")
	delivery := models.Delivery{
		OrderID:    order.ID,
		CourierID:  courier.ID,
		Status:     constants.DeliveryStatusInProgress,
		AssignedAt: time.Now(),
	}
	if err := db.Create(&delivery).Error; err != nil {
		t.Fatalf("create delivery failed: %v", err)
	}

	if err := svc.Delete(courier.ID); !errors.Is(err, ErrCourierHasActiveWork) {
		t.Fatalf("expected courier has active work, got: %v", err)
	}

	if err := db.Model(&models.Delivery{}).Where("id = ?", delivery.ID).Update("status", constants.DeliveryStatusDelivered).Error; err != nil {
		t.Fatalf("update delivery failed: %v", err)
	}
	if err := svc.Delete(courier.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(courier.ID); !errors.Is(err, ErrCourierNotFound) {
		t.Fatalf("expected courier not found after delete, got: %v", err)
	}
}
