package domain

import "fmt"

// ValidationError reports bad or missing input on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an absent entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// InsufficientStockError reports an order quantity exceeding availability.
type InsufficientStockError struct {
	ListingID uint64
	Requested float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("listing %d: requested quantity %g exceeds available stock", e.ListingID, e.Requested)
}

// ConflictError reports state that already exists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InvalidStateError reports an illegal lifecycle transition.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// SignatureError reports a webhook that failed HMAC verification.
type SignatureError struct{}

func (e *SignatureError) Error() string { return "invalid webhook signature" }

// GatewayError wraps an upstream payment gateway failure.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string { return fmt.Sprintf("gateway %s: %v", e.Op, e.Err) }
func (e *GatewayError) Unwrap() error { return e.Err }

// ConfigurationError reports missing out-of-band setup, such as a farmer
// with no payout recipient on file.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }
