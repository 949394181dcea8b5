package services

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

// CostSvcFacade manages budget tracking of a project.
type CostSvcFacade interface {
	ListCostCategories(ctx context.Context, actor *domain.User, projectID int64) ([]domain.CostCategory, error)
	CreateCostCategory(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateCostCategoryRequest) (*domain.CostCategory, error)
	UpdateCostCategory(ctx context.Context, actor *domain.User, costID int64, req dto.UpdateCostCategoryRequest) (*domain.CostCategory, error)
	DeleteCostCategory(ctx context.Context, actor *domain.User, costID int64) error

	// GetCostSummary computes per-category and total variance with exact decimal arithmetic.
	GetCostSummary(ctx context.Context, actor *domain.User, projectID int64) (*dto.CostSummaryResponse, error)
}

// ChangeOrderSvcFacade manages change orders and their approval workflow.
// Only pending orders can be approved or rejected; anything else is apperrors.ErrConflict.
type ChangeOrderSvcFacade interface {
	ListChangeOrders(ctx context.Context, actor *domain.User, projectID int64) ([]domain.ChangeOrder, error)
	CreateChangeOrder(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateChangeOrderRequest) (*domain.ChangeOrder, error)
	ApproveChangeOrder(ctx context.Context, actor *domain.User, changeOrderID int64) (*domain.ChangeOrder, error)
	RejectChangeOrder(ctx context.Context, actor *domain.User, changeOrderID int64) (*domain.ChangeOrder, error)
}
