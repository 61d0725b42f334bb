package service

import "errors"

// Sentinel business errors, mapped to response codes at the handler layer.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
)

// ValidationError reports a missing or malformed request field. The message
// is safe to return to the client verbatim.
type ValidationError struct {
	Msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a client-facing validation error.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
