package constants

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in progress"
	OrderStatusDelivered  = "delivered"
)

// Delivery status constants
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusInProgress = "in progress"
	DeliveryStatusDelivered  = "delivered"
)

// User role constants
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleCourier  = "courier"
)

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Balance transaction type constants
const (
	BalanceTxnTypeTopUp       = "topup"
	BalanceTxnTypeOrderPay    = "order_pay"
	BalanceTxnTypeAdminAdjust = "admin_adjust"
	BalanceTxnTypeOrderRefund = "order_refund"
)

// Balance transaction direction constants
const (
	BalanceTxnDirectionIn  = "in"
	BalanceTxnDirectionOut = "out"
)

// Courier vehicle type constants
const (
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeCar        = "car"
)

// Queue constants
const (
	QueueDefault          = "default"
	TaskOrderCreated      = "order:created"
	TaskDeliveryAssigned  = "delivery:assigned"
	TaskDeliveryDelivered = "delivery:delivered"
)

// Cache defaults
const (
	RedisPrefixDefault = "jm"
)

// Currency constants
const (
	SiteCurrencyDefault = "IDR"
)

// Locale constants
const (
	LocaleIDID = "id-ID"
	LocaleEnUS = "en-US"
)

// Supported locales in fallback order
var SupportedLocales = []string{LocaleIDID, LocaleEnUS}

// Captcha provider constants
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Login log status constants
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// Login log failure reason constants
const (
	LoginLogFailReasonBadRequest         = "bad_request"
	LoginLogFailReasonCaptchaRequired    = "captcha_required"
	LoginLogFailReasonCaptchaInvalid     = "captcha_invalid"
	LoginLogFailReasonInvalidCredentials = "invalid_credentials"
	LoginLogFailReasonUserDisabled       = "user_disabled"
	LoginLogFailReasonInternalError      = "internal_error"
)
