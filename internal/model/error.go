package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeValidation      = "VALIDATION_FAILED"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeUserNotFound    = "USER_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidCoupon   = "INVALID_COUPON"
	ErrCodeExpiredCoupon   = "EXPIRED_COUPON"
	ErrCodeDuplicateEmail  = "DUPLICATE_EMAIL"
	ErrCodeDuplicateCoupon = "DUPLICATE_COUPON"
	ErrCodeInvalidLogin    = "INVALID_CREDENTIALS"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeStoreLoading    = "STORE_LOADING"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrUserNotFound    = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidCoupon   = NewDomainError(ErrCodeInvalidCoupon, "Coupon code is not valid")
	ErrExpiredCoupon   = NewDomainError(ErrCodeExpiredCoupon, "Coupon has expired")
	ErrDuplicateEmail  = NewDomainError(ErrCodeDuplicateEmail, "An account with this email already exists")
	ErrDuplicateCoupon = NewDomainError(ErrCodeDuplicateCoupon, "A coupon with this code already exists")
	ErrInvalidLogin    = NewDomainError(ErrCodeInvalidLogin, "Email or password is incorrect")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrStoreLoading    = NewDomainError(ErrCodeStoreLoading, "Initial data is still loading")
)
