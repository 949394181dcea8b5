package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

type changeOrderService struct {
	BaseService
	orders   portsrepo.ChangeOrderRepositoryFacade
	notifier portssvc.NotificationSvcFacade
	now      func() time.Time
}

// NewChangeOrderService creates the change order workflow service.
func NewChangeOrderService(
	orders portsrepo.ChangeOrderRepositoryFacade,
	projects portsrepo.ProjectReader,
	notifier portssvc.NotificationSvcFacade,
	authorizer portssvc.AuthorizerSvc,
) portssvc.ChangeOrderSvcFacade {
	return &changeOrderService{
		BaseService: BaseService{Authorizer: authorizer, Projects: projects},
		orders:      orders,
		notifier:    notifier,
		now:         time.Now,
	}
}

var _ portssvc.ChangeOrderSvcFacade = (*changeOrderService)(nil)

func (s *changeOrderService) ListChangeOrders(ctx context.Context, actor *domain.User, projectID int64) ([]domain.ChangeOrder, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceChangeOrder, domain.ActionRead); err != nil {
		return nil, err
	}
	orders, err := s.orders.ListChangeOrdersByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list change orders", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to list change orders: %w", err)
	}
	return orders, nil
}

func (s *changeOrderService) CreateChangeOrder(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateChangeOrderRequest) (*domain.ChangeOrder, error) {
	project, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceChangeOrder, domain.ActionCreate)
	if err != nil {
		return nil, err
	}
	created, err := s.orders.CreateChangeOrder(ctx, req.ToChangeOrder(projectID, actor.ID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create change order", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to create change order: %w", err)
	}
	s.GetLogger(ctx).Info("Change order created", slog.Int64("change_order_id", created.ID), slog.Int64("project_id", projectID))

	notifyBestEffort(ctx, s.notifier, domain.Notification{
		UserID:      project.ClientID,
		Title:       "Change order awaiting approval",
		Message:     fmt.Sprintf("%s (%s) on %s needs your decision", created.Title, created.Amount, project.Name),
		Type:        domain.NotificationApprovalNeeded,
		RelatedID:   domain.Int64Ptr(created.ID),
		RelatedType: string(domain.ResourceChangeOrder),
	})
	return created, nil
}

func (s *changeOrderService) ApproveChangeOrder(ctx context.Context, actor *domain.User, changeOrderID int64) (*domain.ChangeOrder, error) {
	return s.decide(ctx, actor, changeOrderID, domain.ChangeOrderApproved)
}

func (s *changeOrderService) RejectChangeOrder(ctx context.Context, actor *domain.User, changeOrderID int64) (*domain.ChangeOrder, error) {
	return s.decide(ctx, actor, changeOrderID, domain.ChangeOrderRejected)
}

// decide moves a pending change order to its final status. Only pending orders can be decided.
func (s *changeOrderService) decide(ctx context.Context, actor *domain.User, changeOrderID int64, status domain.ChangeOrderStatus) (*domain.ChangeOrder, error) {
	order, err := s.orders.FindChangeOrderByID(ctx, changeOrderID)
	if err != nil {
		return nil, notFoundOr(err, "Change order", "failed to load change order")
	}
	if _, err := s.AuthorizeProjectAction(ctx, actor, order.ProjectID, domain.ResourceChangeOrder, domain.ActionApprove); err != nil {
		return nil, err
	}
	if order.Status != domain.ChangeOrderPending {
		return nil, apperrors.New(apperrors.ErrConflict, fmt.Sprintf("Change order is already %s", order.Status))
	}

	patch := domain.ChangeOrderPatch{Status: &status}
	if status == domain.ChangeOrderApproved {
		approvedAt := s.now()
		// Never stamp a decision earlier than the order itself.
		if approvedAt.Before(order.CreatedAt) {
			approvedAt = order.CreatedAt
		}
		patch.ApprovedBy = domain.Int64Ptr(actor.ID)
		patch.ApprovedAt = &approvedAt
	}

	updated, err := s.orders.DecideChangeOrder(ctx, changeOrderID, patch)
	if errors.Is(err, apperrors.ErrConflict) {
		// Lost a race with another decision.
		if current, ferr := s.orders.FindChangeOrderByID(ctx, changeOrderID); ferr == nil {
			return nil, apperrors.New(apperrors.ErrConflict, fmt.Sprintf("Change order is already %s", current.Status))
		}
		return nil, apperrors.New(apperrors.ErrConflict, "Change order has already been decided")
	}
	if err != nil {
		return nil, notFoundOr(err, "Change order", "failed to update change order")
	}
	s.GetLogger(ctx).Info("Change order decided",
		slog.Int64("change_order_id", changeOrderID),
		slog.String("status", string(status)),
	)

	notifyBestEffort(ctx, s.notifier, domain.Notification{
		UserID:      updated.CreatedBy,
		Title:       "Change order " + string(status),
		Message:     fmt.Sprintf("%s was %s by %s", updated.Title, status, actor.FullName()),
		Type:        domain.NotificationGeneral,
		RelatedID:   domain.Int64Ptr(updated.ID),
		RelatedType: string(domain.ResourceChangeOrder),
	})
	return updated, nil
}
