package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal server error"

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their json (or form) name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return ""
		})
	})
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondWithError writes the JSON error body for err. Unclassified errors become a 500
// whose detail is only exposed outside release mode.
func respondWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", slog.String("error", err.Error()))
		body := dto.ErrorResponse{Message: internalErrorMessage}
		if gin.Mode() != gin.ReleaseMode {
			body.Detail = err.Error()
		}
		c.AbortWithStatusJSON(status, body)
		return
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Message: apperrors.MessageOf(err, http.StatusText(status)),
		Errors:  apperrors.FieldsOf(err),
	})
}

// validationMessage renders one failed validator rule.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	}
	return "is invalid"
}

// bindingError converts a bind failure into a validation AppError.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		return apperrors.NewValidation("Validation failed", fields...)
	}
	return apperrors.Wrap(apperrors.ErrValidation, "Invalid request body", err)
}

// bindJSON decodes and validates the body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Rejected request body", slog.String("error", err.Error()))
		respondWithError(c, bindingError(err))
		return false
	}
	return true
}

// bindQuery is bindJSON for query parameters.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondWithError(c, bindingError(err))
		return false
	}
	return true
}

// idParam parses the named path parameter as a positive handle.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondWithError(c, apperrors.NewValidation("Invalid id", apperrors.FieldError{Field: name, Message: "must be a positive integer"}))
		return 0, false
	}
	return id, true
}

// actor returns the authenticated user or answers 401.
func actor(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondWithError(c, apperrors.New(apperrors.ErrUnauthenticated, middleware.AuthRequiredMessage))
		return nil, false
	}
	return user, true
}
