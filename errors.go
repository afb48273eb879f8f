package barte

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for conditions callers are expected to branch on
var (
	// ErrNoClient indicates a convenience method was invoked on an entity
	// that is not bound to a client. Entities decoded by a client method
	// are bound automatically; entities built by hand or unmarshaled
	// directly need Bind.
	ErrNoClient = errors.New("barte: entity is not bound to a client")

	// ErrNotPixCharge indicates QR code data was requested for a charge
	// whose payment method is not PIX.
	ErrNotPixCharge = errors.New("barte: charge is not a PIX charge")
)

// ConfigError reports invalid client construction input, such as an
// environment value other than production or sandbox.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("barte: invalid configuration: %s %s", e.Field, e.Reason)
}

// APIError represents a non-2xx response from the API. The response
// body is kept verbatim for caller diagnostics.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("barte: api returned status %d: %s", e.Status, e.Body)
}

// DecodeError reports a response payload that does not match the
// expected entity shape. It is distinct from APIError so callers can
// tell "server said no" from "server said yes but the answer did not
// parse".
type DecodeError struct {
	Entity string
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("barte: decoding %s: field %q %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("barte: decoding %s: %s", e.Entity, e.Reason)
}

// ValidationError represents a client-side validation failure detected
// before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("barte: invalid field %q: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsNotFound returns true if the error is an API response with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// IsUnauthorized returns true if the error is an API response with
// status 401 or 403, which usually means a bad or revoked API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// IsServerError returns true if the error is an API response with a 5xx
// status.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return false
}

// IsDecodeError returns true if the error came from response decoding
// rather than from the API itself.
func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}
