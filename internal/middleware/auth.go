package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthRequiredMessage is the body message of every 401 issued by SessionAuth.
const AuthRequiredMessage = "Authentication required"

// SessionAuth creates a Gin middleware handler that resolves the session cookie to an
// active user and stores it in the request context. Requests without a live session
// are rejected with 401.
func SessionAuth(authSvc portssvc.AuthSvcFacade, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			logger.Debug("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: AuthRequiredMessage})
			return
		}

		user, err := authSvc.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthenticated) {
				logger.Info("Session rejected")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: AuthRequiredMessage})
				return
			}
			logger.Error("Failed to resolve session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
			return
		}

		enrichedLogger := logger.With(slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
		ctx := context.WithValue(c.Request.Context(), userCtxKey, user)
		ctx = context.WithValue(ctx, tokenCtxKey, token)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
