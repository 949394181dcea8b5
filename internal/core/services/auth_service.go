package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/SscSPs/fieldflow_pm/internal/utils"
)

// InvalidCredentialsMessage is the only message a failed login ever produces.
const InvalidCredentialsMessage = "Invalid credentials"

// dummyPasswordHash is compared against when the username is unknown so the
// response time does not reveal whether the account exists.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("fieldflow-unknown-user")
	return hash
})

type authService struct {
	users    portsrepo.UserReader
	sessions portssvc.SessionRegistry
}

// NewAuthService creates the auth service on top of the user store and session registry.
func NewAuthService(users portsrepo.UserReader, sessions portssvc.SessionRegistry) portssvc.AuthSvcFacade {
	return &authService{users: users, sessions: sessions}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func invalidCredentials() error {
	return apperrors.New(apperrors.ErrUnauthenticated, InvalidCredentialsMessage)
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordHash(password, dummyPasswordHash())
			logger.Info("Login failed", slog.String("reason", "unknown_user"))
			return nil, "", invalidCredentials()
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Info("Login failed", slog.String("reason", "bad_password"), slog.Int64("user_id", user.ID))
		return nil, "", invalidCredentials()
	}
	if !user.IsActive {
		logger.Info("Login failed", slog.String("reason", "inactive"), slog.Int64("user_id", user.ID))
		return nil, "", invalidCredentials()
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()), slog.Int64("user_id", user.ID))
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	logger.Info("User logged in", slog.Int64("user_id", user.ID))
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	unauthenticated := apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	if token == "" {
		return nil, unauthenticated
	}

	userID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if !ok {
		return nil, unauthenticated
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, unauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if !user.IsActive {
		return nil, unauthenticated
	}
	return user, nil
}
