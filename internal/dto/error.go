package dto

import "github.com/SscSPs/fieldflow_pm/internal/apperrors"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
	// Detail carries the internal error text outside release mode only.
	Detail string `json:"detail,omitempty"`
}
