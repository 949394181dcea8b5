package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthenticated indicates the caller has no valid session or presented bad credentials.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates an authenticated caller lacks the role or ownership for the action.
var ErrForbidden = errors.New("access denied")

// ErrConflict indicates the request is valid but clashes with the current state of the resource.
var ErrConflict = errors.New("state conflict")

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError carries one of the sentinel kinds above together with a client-facing message.
// errors.Is matches both the kind and any wrapped cause.
type AppError struct {
	Kind    error
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// New returns an AppError of the given kind.
func New(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap returns an AppError of the given kind that keeps err as its cause.
func Wrap(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewValidation builds a validation error with per-field details.
func NewValidation(message string, fields ...FieldError) *AppError {
	return &AppError{Kind: ErrValidation, Message: message, Fields: fields}
}

// NotFound is shorthand for a not-found AppError naming the missing resource.
func NotFound(resource string) *AppError {
	return New(ErrNotFound, resource+" not found")
}

// Forbidden is shorthand for an authorization denial with the given reason.
func Forbidden(reason string) *AppError {
	return New(ErrForbidden, reason)
}

// MessageOf returns the client-facing message of err when it is an AppError, or fallback otherwise.
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// FieldsOf returns the field details of a validation AppError, if any.
func FieldsOf(err error) []FieldError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
