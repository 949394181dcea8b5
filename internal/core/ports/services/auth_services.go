package services

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// SessionRegistry maps opaque tokens to user ids with a fixed lifetime.
// Absence is reported through the ok flag, never through the error.
type SessionRegistry interface {
	// Issue creates a new session for userID and returns its token.
	Issue(ctx context.Context, userID int64) (string, error)

	// Resolve returns the user of a live session. Expired sessions are purged
	// and reported as absent.
	Resolve(ctx context.Context, token string) (userID int64, ok bool, err error)

	// Revoke removes the session. Unknown tokens are a no-op.
	Revoke(ctx context.Context, token string) error
}

// AuthSvcFacade verifies credentials and bridges sessions to users.
type AuthSvcFacade interface {
	// Login fails with the same unauthenticated error for an unknown user,
	// a wrong password and an inactive account.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)

	// Logout revokes the session; it succeeds for unknown tokens too.
	Logout(ctx context.Context, token string) error

	// CurrentUser resolves a token to an active user or apperrors.ErrUnauthenticated.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// AuthorizerSvc is the single decision point for role and ownership checks.
type AuthorizerSvc interface {
	// Authorize returns nil when allowed, an apperrors.ErrUnauthenticated error
	// for a nil actor and an apperrors.ErrForbidden error otherwise.
	Authorize(ctx context.Context, actor *domain.User, action domain.Action, resource domain.Resource) error
}
