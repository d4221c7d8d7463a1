package service

import (
	"strings"
	"time"

	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/constants"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CourierService courier roster management
type CourierService struct {
	courierRepo repository.CourierRepository
	userRepo    repository.UserRepository
	policy      config.PasswordPolicyConfig
}

// NewCourierService creates the courier service
func NewCourierService(courierRepo repository.CourierRepository, userRepo repository.UserRepository, policy config.PasswordPolicyConfig) *CourierService {
	return &CourierService{
		courierRepo: courierRepo,
		userRepo:    userRepo,
		policy:      policy,
	}
}

// CreateCourierInput courier onboarding input
type CreateCourierInput struct {
	FullName     string
	Email        string
	Password     string
	Phone        string
	VehicleType  string
	VehiclePlate string
}

// UpdateCourierInput courier update input, nil fields stay untouched
type UpdateCourierInput struct {
	FullName     *string
	Phone        *string
	VehicleType  *string
	VehiclePlate *string
	Status       *string
}

// Create onboards a courier: the identity and the courier profile are
// written in one transaction.
func (s *CourierService) Create(input CreateCourierInput) (*models.Courier, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, ErrInvalidFullName
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(s.policy, input.Password); err != nil {
		return nil, err
	}
	phone, err := normalizePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	vehicleType, err := normalizeVehicleType(input.VehicleType)
	if err != nil {
		return nil, err
	}
	plate := strings.ToUpper(strings.TrimSpace(input.VehiclePlate))
	if plate == "" {
		return nil, ErrVehiclePlateInvalid
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        phone,
		Role:         constants.RoleCourier,
		Status:       constants.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	courier := &models.Courier{
		VehicleType:  vehicleType,
		VehiclePlate: plate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		courier.UserID = user.ID
		return s.courierRepo.WithTx(tx).Create(courier)
	})
	if err != nil {
		return nil, err
	}
	courier.User = user
	return courier, nil
}

// Update edits a courier profile and its linked user
func (s *CourierService) Update(id uint, input UpdateCourierInput) (*models.Courier, error) {
	courier, err := s.courierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, ErrCourierNotFound
	}
	user, err := s.userRepo.GetByID(courier.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrCourierNotFound
	}

	now := time.Now()
	userChanged := false
	if input.FullName != nil {
		if trimmed := strings.TrimSpace(*input.FullName); trimmed != "" {
			user.FullName = trimmed
			userChanged = true
		}
	}
	if input.Phone != nil {
		phone, err := normalizePhone(*input.Phone)
		if err != nil {
			return nil, err
		}
		user.Phone = phone
		userChanged = true
	}
	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
			return nil, ErrInvalidUserStatus
		}
		user.Status = status
		userChanged = true
	}
	if input.VehicleType != nil {
		vehicleType, err := normalizeVehicleType(*input.VehicleType)
		if err != nil {
			return nil, err
		}
		courier.VehicleType = vehicleType
	}
	if input.VehiclePlate != nil {
		if plate := strings.ToUpper(strings.TrimSpace(*input.VehiclePlate)); plate != "" {
			courier.VehiclePlate = plate
		}
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if userChanged {
			user.UpdatedAt = now
			if err := s.userRepo.WithTx(tx).Update(user); err != nil {
				return err
			}
		}
		courier.UpdatedAt = now
		return s.courierRepo.WithTx(tx).Update(courier)
	})
	if err != nil {
		return nil, err
	}
	courier.User = user
	return courier, nil
}

// Delete removes a courier from the roster. Couriers with undelivered
// work cannot be removed.
func (s *CourierService) Delete(id uint) error {
	courier, err := s.courierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if courier == nil {
		return ErrCourierNotFound
	}
	active, err := s.courierRepo.CountActiveDeliveries(id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrCourierHasActiveWork
	}
	return s.courierRepo.Delete(id)
}

// GetByID fetches a courier with the linked user
func (s *CourierService) GetByID(id uint) (*models.Courier, error) {
	courier, err := s.courierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, ErrCourierNotFound
	}
	return courier, nil
}

// GetByUserID fetches the courier profile behind a user account
func (s *CourierService) GetByUserID(userID uint) (*models.Courier, error) {
	courier, err := s.courierRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, ErrCourierNotFound
	}
	return courier, nil
}

// List paginated courier roster
func (s *CourierService) List(page, pageSize int) ([]models.Courier, int64, error) {
	return s.courierRepo.List(page, pageSize)
}

func normalizeVehicleType(vehicleType string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(vehicleType))
	switch normalized {
	case constants.VehicleTypeMotorcycle, constants.VehicleTypeCar:
		return normalized, nil
	default:
		return "", ErrVehicleTypeInvalid
	}
}
