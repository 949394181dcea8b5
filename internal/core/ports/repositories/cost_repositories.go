package repositories

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// CostCategoryReader defines read operations for cost categories.
type CostCategoryReader interface {
	FindCostCategoryByID(ctx context.Context, costID int64) (*domain.CostCategory, error)
	ListCostCategoriesByProject(ctx context.Context, projectID int64) ([]domain.CostCategory, error)
}

// CostCategoryWriter defines write operations for cost categories.
type CostCategoryWriter interface {
	CreateCostCategory(ctx context.Context, cost domain.CostCategory) (*domain.CostCategory, error)
	UpdateCostCategory(ctx context.Context, costID int64, patch domain.CostCategoryPatch) (*domain.CostCategory, error)
	DeleteCostCategory(ctx context.Context, costID int64) (bool, error)
}

type CostCategoryRepositoryFacade interface {
	CostCategoryReader
	CostCategoryWriter
}

// ChangeOrderReader defines read operations for change orders.
type ChangeOrderReader interface {
	FindChangeOrderByID(ctx context.Context, changeOrderID int64) (*domain.ChangeOrder, error)
	ListChangeOrdersByProject(ctx context.Context, projectID int64) ([]domain.ChangeOrder, error)
}

// ChangeOrderWriter defines write operations for change orders.
type ChangeOrderWriter interface {
	CreateChangeOrder(ctx context.Context, order domain.ChangeOrder) (*domain.ChangeOrder, error)
	UpdateChangeOrder(ctx context.Context, changeOrderID int64, patch domain.ChangeOrderPatch) (*domain.ChangeOrder, error)
	// DecideChangeOrder applies patch only while the order is still pending; the check and the
	// write are one step. It returns apperrors.ErrConflict once the order has been decided.
	DecideChangeOrder(ctx context.Context, changeOrderID int64, patch domain.ChangeOrderPatch) (*domain.ChangeOrder, error)
	DeleteChangeOrder(ctx context.Context, changeOrderID int64) (bool, error)
}

type ChangeOrderRepositoryFacade interface {
	ChangeOrderReader
	ChangeOrderWriter
}
