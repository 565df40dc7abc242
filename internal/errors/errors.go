package errors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a stored entity does not exist
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Is matches another NotFoundError for the same entity
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Entity == e.Entity
}

// ConflictError is returned when a request collides with existing state
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason == "" {
		return e.Entity + " conflicts with existing state"
	}
	return e.Entity + " " + e.Reason
}

// Is matches another ConflictError for the same entity
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	return ok && t.Entity == e.Entity
}

// ValidationError reports a rejected input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// AuthenticationError means the caller's identity is missing or incomplete
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError means the caller is known but lacks a permission
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// BatchTooLargeError is returned when a scheduling run receives more orders than the batch limit
type BatchTooLargeError struct {
	Count int
	Limit int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("batch too large: %d orders exceeds limit of %d", e.Count, e.Limit)
}

// PersistenceError wraps a failure of the storage collaborator
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var (
	ErrChartSessionNotFound = &NotFoundError{Entity: "chart session"}
	ErrRunInProgress        = &ConflictError{Entity: "scheduling run", Reason: "already in progress for this user"}
)

// Calendar and scheduling failures
var (
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidRotation     = errors.New("invalid rotation configuration")
	ErrInvalidShiftWindow  = errors.New("invalid shift window")
	ErrInvalidDate         = errors.New("invalid date")
	ErrSchedulingTimeout   = errors.New("scheduling timeout")
	ErrNoValidOrders       = errors.New("no valid orders to schedule")
	ErrInvalidTimelineView = errors.New("invalid timeline view")
)

var (
	ErrUserEmailNotFound = &AuthenticationError{Message: "user email not found in context"}
	ErrRunAccessDenied   = &AuthorizationError{Message: "not permitted to run the scheduler"}
)

func isKind[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool { return isKind[*NotFoundError](err) }

// IsConflict reports whether err wraps a ConflictError
func IsConflict(err error) bool { return isKind[*ConflictError](err) }

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool { return isKind[*ValidationError](err) }

// IsAuthentication reports whether err wraps an AuthenticationError
func IsAuthentication(err error) bool { return isKind[*AuthenticationError](err) }

// IsAuthorization reports whether err wraps an AuthorizationError
func IsAuthorization(err error) bool { return isKind[*AuthorizationError](err) }

// IsBatchTooLarge reports whether err wraps a BatchTooLargeError
func IsBatchTooLarge(err error) bool { return isKind[*BatchTooLargeError](err) }

// IsPersistence reports whether err wraps a PersistenceError
func IsPersistence(err error) bool { return isKind[*PersistenceError](err) }

// NewNotFoundError creates a NotFoundError for entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBatchTooLargeError creates a new BatchTooLargeError
func NewBatchTooLargeError(count, limit int) error {
	return &BatchTooLargeError{Count: count, Limit: limit}
}

// NewPersistenceError wraps a storage failure for the given operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
