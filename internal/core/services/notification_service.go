package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
)

type notificationService struct {
	BaseService
	notifications portsrepo.NotificationRepositoryFacade
}

func NewNotificationService(notifications portsrepo.NotificationRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.NotificationSvcFacade {
	return &notificationService{
		BaseService:   BaseService{Authorizer: authorizer},
		notifications: notifications,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListNotifications(ctx context.Context, actor *domain.User) ([]domain.Notification, error) {
	if actor == nil {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	}
	list, err := s.notifications.ListNotificationsByUser(ctx, actor.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications")
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

func (s *notificationService) ListUnreadNotifications(ctx context.Context, actor *domain.User) ([]domain.Notification, error) {
	if actor == nil {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	}
	list, err := s.notifications.ListUnreadNotificationsByUser(ctx, actor.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unread notifications")
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return list, nil
}

func (s *notificationService) MarkRead(ctx context.Context, actor *domain.User, notificationID int64) error {
	n, err := s.notifications.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return notFoundOr(err, "Notification", "failed to load notification")
	}
	res := domain.Resource{Kind: domain.ResourceNotification, ID: n.ID, OwnerUserID: n.UserID}
	if err := s.Authorize(ctx, actor, domain.ActionUpdate, res); err != nil {
		return err
	}
	found, err := s.notifications.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark notification read", slog.Int64("notification_id", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if !found {
		return apperrors.NotFound("Notification")
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor *domain.User) (int, error) {
	if actor == nil {
		return 0, apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	}
	changed, err := s.notifications.MarkAllNotificationsRead(ctx, actor.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read")
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	s.GetLogger(ctx).Info("Notifications marked read", slog.Int("count", changed))
	return changed, nil
}

func (s *notificationService) Notify(ctx context.Context, n domain.Notification) error {
	if n.Type == "" {
		n.Type = domain.NotificationGeneral
	}
	n.Read = false
	created, err := s.notifications.CreateNotification(ctx, n)
	if err != nil {
		s.LogError(ctx, err, "Failed to store notification", slog.Int64("recipient_id", n.UserID))
		return fmt.Errorf("failed to store notification: %w", err)
	}
	s.GetLogger(ctx).Debug("Notification stored",
		slog.Int64("notification_id", created.ID),
		slog.Int64("recipient_id", created.UserID),
		slog.String("type", string(created.Type)),
	)
	return nil
}

// notifyBestEffort delivers a notification and only logs failures; the triggering write already succeeded.
func notifyBestEffort(ctx context.Context, notifier portssvc.NotificationSvcFacade, n domain.Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, n); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Notification dropped", slog.String("error", err.Error()), slog.Int64("recipient_id", n.UserID))
	}
}
