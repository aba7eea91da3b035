// Package domain holds the quote and account entities and the error taxonomy
// shared by every layer. Errors here describe business outcomes; adapters decide
// how they look on the wire.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates an unknown user, quote or category.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the entity already exists (duplicate account or favorite).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is returned for any failed login. It never says which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation indicates a required field was missing.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the upstream quote provider could not answer.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error for entity/id.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s already exists: %s", e.Entity, e.Reason)
	}

	return e.Entity + " already exists"
}

// Unwrap returns ErrConflict.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates an "already exists" error.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RequireText returns a validation error when value is empty.
func RequireText(field, value string) error {
	if value == "" {
		return NewValidationError(field, "is required")
	}

	return nil
}

// UnavailableError reports a failed upstream call.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns ErrUnavailable.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error for service.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound reports whether err is a not found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is an "already exists" error.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsInvalidCredentials reports whether err is a login failure.
func IsInvalidCredentials(err error) bool { return errors.Is(err, ErrInvalidCredentials) }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsUnavailable reports whether err is an upstream failure.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
