package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto
// localized messages and response codes.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	// auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidFullName    = errors.New("full name is required")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrProfileEmpty       = errors.New("no profile fields to update")
	ErrInvalidUserStatus  = errors.New("invalid user status")

	// captcha
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha configuration invalid")

	// catalog
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product not available")
	ErrProductInvalid      = errors.New("invalid product data")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrStockInvalid        = errors.New("invalid stock value")

	// ledger
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrTopUpBelowMinimum   = errors.New("top up below minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCustomerNotFound    = errors.New("customer not found")

	// promo
	ErrPromoNotFound       = errors.New("promo code not found")
	ErrPromoInactive       = errors.New("promo code inactive")
	ErrPromoCodeExists     = errors.New("promo code already exists")
	ErrPromoPercentInvalid = errors.New("discount percent out of range")

	// cart
	ErrCartEmpty             = errors.New("cart is empty")
	ErrCartHoldsOtherProduct = errors.New("cart already holds another product")
	ErrInvalidCartItem       = errors.New("invalid cart item")

	// orders
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("order status does not allow this action")

	// deliveries
	ErrDeliveryExists        = errors.New("order already has a delivery")
	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrDeliveryStatusInvalid = errors.New("delivery status does not allow this action")
	ErrCourierNotFound       = errors.New("courier not found")
	ErrVehicleTypeInvalid    = errors.New("invalid vehicle type")
	ErrVehiclePlateInvalid   = errors.New("vehicle plate is required")
	ErrCourierHasActiveWork  = errors.New("courier still has undelivered work")

	// dashboard
	ErrDashboardRangeInvalid = errors.New("invalid dashboard range")

	// email
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
