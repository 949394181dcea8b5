package dto

import (
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

type CreateCostCategoryRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     domain.CostKind `json:"category" binding:"omitempty,oneof=materials labor equipment permits other"`
	BudgetAmount *domain.Money   `json:"budgetAmount"`
	ActualAmount *domain.Money   `json:"actualAmount"`
}

func (r CreateCostCategoryRequest) ToCostCategory(projectID int64) domain.CostCategory {
	actual := domain.ZeroMoney()
	if r.ActualAmount != nil {
		actual = *r.ActualAmount
	}
	return domain.CostCategory{
		ProjectID:    projectID,
		Name:         r.Name,
		Category:     r.Category,
		BudgetAmount: r.BudgetAmount,
		ActualAmount: actual,
	}
}

type UpdateCostCategoryRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	Category     *domain.CostKind `json:"category" binding:"omitempty,oneof=materials labor equipment permits other"`
	BudgetAmount *domain.Money    `json:"budgetAmount"`
	ActualAmount *domain.Money    `json:"actualAmount"`
}

func (r UpdateCostCategoryRequest) ToPatch() domain.CostCategoryPatch {
	return domain.CostCategoryPatch{
		Name:         r.Name,
		Category:     r.Category,
		BudgetAmount: r.BudgetAmount,
		ActualAmount: r.ActualAmount,
	}
}

// CostLineResponse is one category of a cost summary.
type CostLineResponse struct {
	domain.CostCategory
	Variance     domain.Money `json:"variance"`
	PercentSpent string       `json:"percentSpent"`
	OverBudget   bool         `json:"overBudget"`
}

// CostSummaryResponse aggregates the cost categories of a project.
type CostSummaryResponse struct {
	ProjectID     int64              `json:"projectId"`
	Categories    []CostLineResponse `json:"categories"`
	TotalBudget   domain.Money       `json:"totalBudget"`
	TotalActual   domain.Money       `json:"totalActual"`
	TotalVariance domain.Money       `json:"totalVariance"`
	PercentSpent  string             `json:"percentSpent"`
}

type CreateChangeOrderRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Amount      *domain.Money `json:"amount" binding:"required"`
}

func (r CreateChangeOrderRequest) ToChangeOrder(projectID, creatorID int64) domain.ChangeOrder {
	return domain.ChangeOrder{
		ProjectID:   projectID,
		Title:       r.Title,
		Description: r.Description,
		Amount:      *r.Amount,
		Status:      domain.ChangeOrderPending,
		CreatedBy:   creatorID,
	}
}
