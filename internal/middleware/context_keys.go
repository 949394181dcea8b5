package middleware

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userCtxKey stores the authenticated *domain.User in the request context.
	userCtxKey = contextKey("user")
	// tokenCtxKey stores the raw session token so logout can revoke it.
	tokenCtxKey = contextKey("sessionToken")
)

// GetUserFromContext retrieves the authenticated user placed by SessionAuth.
// It returns the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	return UserFromCtx(c.Request.Context())
}

// UserFromCtx is GetUserFromContext for a standard context.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok && user != nil
}

// GetSessionTokenFromContext returns the session token the request authenticated with.
func GetSessionTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(tokenCtxKey).(string)
	return token, ok && token != ""
}
