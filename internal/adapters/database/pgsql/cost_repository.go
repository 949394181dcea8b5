package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const costColumns = `id, project_id, name, category, budget_amount::text, actual_amount::text, created_at`

func scanCostCategory(row pgx.Row) (domain.CostCategory, error) {
	var (
		c      domain.CostCategory
		budget *string
		actual string
	)
	if err := row.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Category, &budget, &actual, &c.CreatedAt); err != nil {
		return c, err
	}
	var err error
	if c.BudgetAmount, err = parseMoneyPtr(budget); err != nil {
		return c, err
	}
	c.ActualAmount, err = parseMoney(actual)
	return c, err
}

func (s *Store) FindCostCategoryByID(ctx context.Context, costID int64) (*domain.CostCategory, error) {
	return queryOne(ctx, s.db, scanCostCategory, "find cost category",
		`SELECT `+costColumns+` FROM cost_categories WHERE id = $1`, costID)
}

func (s *Store) ListCostCategoriesByProject(ctx context.Context, projectID int64) ([]domain.CostCategory, error) {
	return queryList(ctx, s.db, scanCostCategory, "list cost categories",
		`SELECT `+costColumns+` FROM cost_categories WHERE project_id = $1 ORDER BY id`, projectID)
}

func (s *Store) CreateCostCategory(ctx context.Context, cost domain.CostCategory) (*domain.CostCategory, error) {
	return queryOne(ctx, s.db, scanCostCategory, "create cost category", `
        INSERT INTO cost_categories (project_id, name, category, budget_amount, actual_amount)
        VALUES ($1, $2, $3, $4::numeric, $5::numeric)
        RETURNING `+costColumns,
		cost.ProjectID, cost.Name, string(cost.Category), moneyPtrArg(cost.BudgetAmount), moneyArg(cost.ActualAmount))
}

func (s *Store) UpdateCostCategory(ctx context.Context, costID int64, patch domain.CostCategoryPatch) (*domain.CostCategory, error) {
	return queryOne(ctx, s.db, scanCostCategory, "update cost category", `
        UPDATE cost_categories SET
            name = COALESCE($2, name),
            category = COALESCE($3, category),
            budget_amount = COALESCE($4::numeric, budget_amount),
            actual_amount = COALESCE($5::numeric, actual_amount)
        WHERE id = $1
        RETURNING `+costColumns,
		costID, patch.Name, patch.Category, moneyPtrArg(patch.BudgetAmount), moneyPtrArg(patch.ActualAmount))
}

func (s *Store) DeleteCostCategory(ctx context.Context, costID int64) (bool, error) {
	return deleteByID(ctx, s.db, "cost_categories", costID)
}

const changeOrderColumns = `id, project_id, title, description, amount::text, status, created_by,
    approved_by, approved_at, signed_at, created_at`

func scanChangeOrder(row pgx.Row) (domain.ChangeOrder, error) {
	var (
		o      domain.ChangeOrder
		amount string
	)
	if err := row.Scan(&o.ID, &o.ProjectID, &o.Title, &o.Description, &amount, &o.Status, &o.CreatedBy,
		&o.ApprovedBy, &o.ApprovedAt, &o.SignedAt, &o.CreatedAt); err != nil {
		return o, err
	}
	var err error
	o.Amount, err = parseMoney(amount)
	return o, err
}

func (s *Store) FindChangeOrderByID(ctx context.Context, changeOrderID int64) (*domain.ChangeOrder, error) {
	return queryOne(ctx, s.db, scanChangeOrder, "find change order",
		`SELECT `+changeOrderColumns+` FROM change_orders WHERE id = $1`, changeOrderID)
}

func (s *Store) ListChangeOrdersByProject(ctx context.Context, projectID int64) ([]domain.ChangeOrder, error) {
	return queryList(ctx, s.db, scanChangeOrder, "list change orders",
		`SELECT `+changeOrderColumns+` FROM change_orders WHERE project_id = $1 ORDER BY id`, projectID)
}

func (s *Store) CreateChangeOrder(ctx context.Context, order domain.ChangeOrder) (*domain.ChangeOrder, error) {
	return queryOne(ctx, s.db, scanChangeOrder, "create change order", `
        INSERT INTO change_orders (project_id, title, description, amount, status, created_by, approved_by, approved_at, signed_at)
        VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9)
        RETURNING `+changeOrderColumns,
		order.ProjectID, order.Title, order.Description, moneyArg(order.Amount), string(order.Status),
		order.CreatedBy, order.ApprovedBy, order.ApprovedAt, order.SignedAt)
}

func (s *Store) UpdateChangeOrder(ctx context.Context, changeOrderID int64, patch domain.ChangeOrderPatch) (*domain.ChangeOrder, error) {
	return queryOne(ctx, s.db, scanChangeOrder, "update change order", `
        UPDATE change_orders SET
            title = COALESCE($2, title),
            description = COALESCE($3, description),
            amount = COALESCE($4::numeric, amount),
            status = COALESCE($5, status),
            approved_by = COALESCE($6, approved_by),
            approved_at = COALESCE($7, approved_at),
            signed_at = COALESCE($8, signed_at)
        WHERE id = $1
        RETURNING `+changeOrderColumns,
		changeOrderID, patch.Title, patch.Description, moneyPtrArg(patch.Amount), patch.Status,
		patch.ApprovedBy, patch.ApprovedAt, patch.SignedAt)
}

// DecideChangeOrder guards the transition with the status in the WHERE clause. When no row
// matches, a re-read tells a missing order apart from one that is already decided.
func (s *Store) DecideChangeOrder(ctx context.Context, changeOrderID int64, patch domain.ChangeOrderPatch) (*domain.ChangeOrder, error) {
	order, err := queryOne(ctx, s.db, scanChangeOrder, "decide change order", `
        UPDATE change_orders SET
            status = COALESCE($2, status),
            approved_by = COALESCE($3, approved_by),
            approved_at = COALESCE($4, approved_at)
        WHERE id = $1 AND status = 'pending'
        RETURNING `+changeOrderColumns,
		changeOrderID, patch.Status, patch.ApprovedBy, patch.ApprovedAt)
	if !errors.Is(err, apperrors.ErrNotFound) {
		return order, err
	}
	if _, err := s.FindChangeOrderByID(ctx, changeOrderID); err != nil {
		return nil, err
	}
	return nil, apperrors.ErrConflict
}

func (s *Store) DeleteChangeOrder(ctx context.Context, changeOrderID int64) (bool, error) {
	return deleteByID(ctx, s.db, "change_orders", changeOrderID)
}
