package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/utils"
)

type costService struct {
	BaseService
	costs    portsrepo.CostCategoryRepositoryFacade
	users    portsrepo.UserReader
	notifier portssvc.NotificationSvcFacade
}

// NewCostService creates the budget tracking service.
func NewCostService(
	costs portsrepo.CostCategoryRepositoryFacade,
	projects portsrepo.ProjectReader,
	users portsrepo.UserReader,
	notifier portssvc.NotificationSvcFacade,
	authorizer portssvc.AuthorizerSvc,
) portssvc.CostSvcFacade {
	return &costService{
		BaseService: BaseService{Authorizer: authorizer, Projects: projects},
		costs:       costs,
		users:       users,
		notifier:    notifier,
	}
}

var _ portssvc.CostSvcFacade = (*costService)(nil)

func (s *costService) loadCost(ctx context.Context, actor *domain.User, costID int64, action domain.Action) (*domain.CostCategory, *domain.Project, error) {
	cost, err := s.costs.FindCostCategoryByID(ctx, costID)
	if err != nil {
		return nil, nil, notFoundOr(err, "Cost category", "failed to load cost category")
	}
	project, err := s.AuthorizeProjectAction(ctx, actor, cost.ProjectID, domain.ResourceCost, action)
	if err != nil {
		return nil, nil, err
	}
	return cost, project, nil
}

func (s *costService) ListCostCategories(ctx context.Context, actor *domain.User, projectID int64) ([]domain.CostCategory, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceCost, domain.ActionRead); err != nil {
		return nil, err
	}
	costs, err := s.costs.ListCostCategoriesByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost categories", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to list cost categories: %w", err)
	}
	return costs, nil
}

func (s *costService) CreateCostCategory(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateCostCategoryRequest) (*domain.CostCategory, error) {
	project, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceCost, domain.ActionCreate)
	if err != nil {
		return nil, err
	}
	if err := validateAmounts(req.BudgetAmount, req.ActualAmount); err != nil {
		return nil, err
	}
	created, err := s.costs.CreateCostCategory(ctx, req.ToCostCategory(projectID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create cost category", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to create cost category: %w", err)
	}
	s.GetLogger(ctx).Info("Cost category created", slog.Int64("cost_id", created.ID), slog.Int64("project_id", projectID))
	s.alertIfOverBudget(ctx, project, created)
	return created, nil
}

func (s *costService) UpdateCostCategory(ctx context.Context, actor *domain.User, costID int64, req dto.UpdateCostCategoryRequest) (*domain.CostCategory, error) {
	before, project, err := s.loadCost(ctx, actor, costID, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if err := validateAmounts(req.BudgetAmount, req.ActualAmount); err != nil {
		return nil, err
	}
	updated, err := s.costs.UpdateCostCategory(ctx, costID, req.ToPatch())
	if err != nil {
		return nil, notFoundOr(err, "Cost category", "failed to update cost category")
	}
	// Alert once, on the transition into overspend.
	if !before.OverBudget() {
		s.alertIfOverBudget(ctx, project, updated)
	}
	return updated, nil
}

func (s *costService) DeleteCostCategory(ctx context.Context, actor *domain.User, costID int64) error {
	if _, _, err := s.loadCost(ctx, actor, costID, domain.ActionDelete); err != nil {
		return err
	}
	removed, err := s.costs.DeleteCostCategory(ctx, costID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete cost category", slog.Int64("cost_id", costID))
		return fmt.Errorf("failed to delete cost category: %w", err)
	}
	if !removed {
		return apperrors.NotFound("Cost category")
	}
	return nil
}

// GetCostSummary reports per-category variance and project totals.
func (s *costService) GetCostSummary(ctx context.Context, actor *domain.User, projectID int64) (*dto.CostSummaryResponse, error) {
	costs, err := s.ListCostCategories(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	summary := &dto.CostSummaryResponse{
		ProjectID:   projectID,
		Categories:  make([]dto.CostLineResponse, 0, len(costs)),
		TotalBudget: domain.ZeroMoney(),
		TotalActual: domain.ZeroMoney(),
	}
	for _, c := range costs {
		budget := domain.ZeroMoney()
		if c.BudgetAmount != nil {
			budget = *c.BudgetAmount
		}
		summary.TotalBudget = summary.TotalBudget.Add(budget)
		summary.TotalActual = summary.TotalActual.Add(c.ActualAmount)
		summary.Categories = append(summary.Categories, dto.CostLineResponse{
			CostCategory: c,
			Variance:     c.Variance(),
			PercentSpent: utils.PercentOf(c.ActualAmount.Decimal(), budget.Decimal()),
			OverBudget:   c.OverBudget(),
		})
	}
	summary.TotalVariance = summary.TotalBudget.Sub(summary.TotalActual)
	summary.PercentSpent = utils.PercentOf(summary.TotalActual.Decimal(), summary.TotalBudget.Decimal())
	return summary, nil
}

func validateAmounts(budget, actual *domain.Money) error {
	var fields []apperrors.FieldError
	if budget != nil && budget.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "budgetAmount", Message: "must not be negative"})
	}
	if actual != nil && actual.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "actualAmount", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return apperrors.NewValidation("Invalid amount", fields...)
	}
	return nil
}

// alertIfOverBudget tells the company admins that a category has overspent.
func (s *costService) alertIfOverBudget(ctx context.Context, project *domain.Project, cost *domain.CostCategory) {
	if !cost.OverBudget() {
		return
	}
	admins, err := s.users.ListUsersByCompany(ctx, project.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve budget alert recipients", slog.Int64("project_id", project.ID))
		return
	}
	for _, u := range admins {
		if u.Role != domain.RoleAdmin || !u.IsActive {
			continue
		}
		notifyBestEffort(ctx, s.notifier, domain.Notification{
			UserID:      u.ID,
			Title:       "Budget exceeded",
			Message:     fmt.Sprintf("%s on %s is over budget by %s", cost.Name, project.Name, cost.Variance().Neg()),
			Type:        domain.NotificationBudgetAlert,
			RelatedID:   domain.Int64Ptr(cost.ID),
			RelatedType: string(domain.ResourceCost),
		})
	}
}
