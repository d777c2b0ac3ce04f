package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; anything else surfaces as an internal error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password does not meet policy")
	ErrNoProfileImage     = errors.New("no profile image to remove")

	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("invalid price")

	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrOrderNotDeletable   = errors.New("only delivered orders can be deleted")
	ErrInvalidOrderStatus  = errors.New("invalid order status")

	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha not configured")
)
