// Package service provides application-level services for managing users,
// card sets and cards.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Store errors such as store.ErrSetNotFound pass through unchanged
// 3. Unexpected errors are wrapped in ServiceError
// 4. The API layer maps errors to HTTP status codes with errors.Is/errors.As
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrNotVisible indicates a private resource was requested by someone other than its author.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotVisible = errors.New("resource is private")

	// ErrInvalidState indicates the resource exists but is not in a state that
	// permits the operation. Specific conditions wrap it.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidState = errors.New("invalid state")
)

// ServiceError carries the failed operation alongside an unexpected cause.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
