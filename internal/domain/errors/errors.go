// Package errors defines the business errors the store can return. The core
// has no transport, so errors carry a business code and messages only; the
// presentation layer decides how to show them.
package errors

import (
	"fooddesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrNotFound covers update/delete/lookup against an id that is not in
	// the store. Never fatal; callers inspect and move on.
	ErrNotFound = NewBaseError(
		"NOT_FOUND",
		"record not found",
		"",
	)

	// ErrValidationFailed covers any store invariant broken by the input.
	// The offending operation is rejected before anything is mutated.
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"input violates a store invariant",
		"",
	)

	// ErrReviewTargetConflict is returned when a review names both a
	// restaurant and a driver, or neither.
	ErrReviewTargetConflict = NewBaseError(
		"REVIEW_TARGET_CONFLICT",
		"a review must target exactly one of a restaurant or a driver",
		"",
	)

	// ErrForeignDish is returned when an order line item belongs to a
	// different restaurant than the order itself.
	ErrForeignDish = NewBaseError(
		"FOREIGN_DISH",
		"dish belongs to a different restaurant than the order",
		"",
	)

	// ErrTerminalStatus is returned when a caller tries to move an order
	// out of a terminal status.
	ErrTerminalStatus = NewBaseError(
		"TERMINAL_STATUS",
		"order is in a terminal status and can no longer change",
		"",
	)

	// ErrEntityInUse is returned when a delete would orphan records that
	// still reference the entity.
	ErrEntityInUse = NewBaseError(
		"ENTITY_IN_USE",
		"record is still referenced and cannot be deleted",
		"",
	)
)
