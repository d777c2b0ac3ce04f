package constants

// User roles. The set is closed: every account carries exactly one of
// these values and no other value is ever written to storage.
const (
	RoleClient   = "client"
	RoleSupplier = "fournisseur"
	RoleAdmin    = "admin"
)

// Order status values, kept in French as stored by the platform.
const (
	OrderStatusPending   = "en cours"
	OrderStatusDelivered = "livrée"
)

// Sales aggregation periods
const (
	SalesPeriodDay   = "day"
	SalesPeriodWeek  = "week"
	SalesPeriodMonth = "month"
)

// Queue names
const (
	QueueDefault = "default"
)

// Async task types
const (
	TaskAuthPurgeTokens = "auth:purge_tokens"
)

// Captcha provider constants
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Captcha scenes
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// KnownRole reports whether the given value belongs to the closed role set.
func KnownRole(role string) bool {
	switch role {
	case RoleClient, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// KnownOrderStatus reports whether the given value is an accepted order status.
func KnownOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusDelivered:
		return true
	}
	return false
}

// NormalizeSalesPeriod falls back to day for unknown periods.
func NormalizeSalesPeriod(period string) string {
	switch period {
	case SalesPeriodDay, SalesPeriodWeek, SalesPeriodMonth:
		return period
	}
	return SalesPeriodDay
}
