package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.AuthorizerSvc
	Projects   portsrepo.ProjectReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// Authorize consults the gate and logs denials.
func (s *BaseService) Authorize(ctx context.Context, actor *domain.User, action domain.Action, res domain.Resource) error {
	if err := s.Authorizer.Authorize(ctx, actor, action, res); err != nil {
		s.GetLogger(ctx).Warn("Authorization denied",
			slog.String("action", string(action)),
			slog.String("resource", string(res.Kind)),
			slog.Int64("resource_id", res.ID),
		)
		return err
	}
	return nil
}

// loadProject fetches a project, turning absence into a not-found AppError.
func (s *BaseService) loadProject(ctx context.Context, projectID int64) (*domain.Project, error) {
	project, err := s.Projects.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project", "failed to load project")
	}
	return project, nil
}

// AuthorizeProjectAction loads the project and checks action on a resource of kind
// that belongs to it. Existence is checked first, so a foreign project yields 403, not 404.
func (s *BaseService) AuthorizeProjectAction(ctx context.Context, actor *domain.User, projectID int64, kind domain.ResourceKind, action domain.Action) (*domain.Project, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, action, domain.ProjectResource(kind, project)); err != nil {
		return nil, err
	}
	return project, nil
}

// notFoundOr maps a repository ErrNotFound to a named not-found AppError and wraps anything else.
func notFoundOr(err error, resource, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NotFound(resource)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// requireCompany returns the actor's company or a forbidden error for users without one.
func requireCompany(actor *domain.User) (int64, error) {
	if actor == nil {
		return 0, apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	}
	if actor.CompanyID == nil {
		return 0, apperrors.Forbidden("Access denied")
	}
	return *actor.CompanyID, nil
}
