package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the four recoverable error kinds. errors.Is against
// these drives boundary-level status mapping.
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("not authorized")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("object not found")
)

// ValidationError reports malformed or policy-violating input. The message is
// specific and actionable; it is safe to surface to the caller.
type ValidationError struct {
	Message string
	Cause   error
}

// NewValidationError creates a ValidationError with the given user-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an underlying cause.
func NewValidationErrorWithCause(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, sanitize(e.Message))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AuthorizationError reports that the acting user lacks the role or the
// ownership required for an operation.
type AuthorizationError struct {
	Operation string
	Cause     error
}

// NewAuthorizationError creates an AuthorizationError for the named operation.
func NewAuthorizationError(operation string) *AuthorizationError {
	return &AuthorizationError{Operation: operation}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an underlying cause.
func NewAuthorizationErrorWithCause(operation string, cause error) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAuthorization, sanitize(e.Operation), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuthorization, sanitize(e.Operation))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// ConflictError reports a unique-constraint violation or a lost concurrent
// state race (e.g. an invoice already resolved by another actor).
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewConflictError creates a ConflictError for the conflicting parameter and value.
func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %s)", ErrConflict, sanitize(e.ParamName), e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrConflict, sanitize(e.ParamName), e.Value)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotFoundError reports that a referenced object does not exist. Out-of-scope
// objects produce the same error so their existence is not leaked.
type NotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewNotFoundError creates a NotFoundError for the named parameter and identifier.
func NewNotFoundError(paramName string, id any) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping an underlying cause.
func NewNotFoundErrorWithCause(paramName string, id any, cause error) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)", ErrNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrNotFound, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// sanitize keeps error messages single-line for log friendliness.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}
