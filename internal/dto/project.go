package dto

import (
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// CreateProjectRequest defines the data needed to open a project.
// The owning company is always the caller's.
type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Address     string               `json:"address" binding:"required"`
	ClientID    int64                `json:"clientId" binding:"required,gt=0"`
	Status      domain.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on-hold completed cancelled"`
	BudgetTotal *domain.Money        `json:"budgetTotal"`
	StartDate   *time.Time           `json:"startDate"`
	DueDate     *time.Time           `json:"dueDate"`
	EndDate     *time.Time           `json:"endDate"`
}

// ToProject builds the record to persist for companyID.
func (r CreateProjectRequest) ToProject(companyID int64) domain.Project {
	status := r.Status
	if status == "" {
		status = domain.ProjectPlanning
	}
	return domain.Project{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		CompanyID:   companyID,
		ClientID:    r.ClientID,
		Status:      status,
		BudgetTotal: r.BudgetTotal,
		StartDate:   r.StartDate,
		DueDate:     r.DueDate,
		EndDate:     r.EndDate,
	}
}

type UpdateProjectRequest struct {
	Name        *string               `json:"name" binding:"omitempty,min=1"`
	Description *string               `json:"description"`
	Address     *string               `json:"address" binding:"omitempty,min=1"`
	ClientID    *int64                `json:"clientId" binding:"omitempty,gt=0"`
	Status      *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on-hold completed cancelled"`
	BudgetTotal *domain.Money         `json:"budgetTotal"`
	StartDate   *time.Time            `json:"startDate"`
	DueDate     *time.Time            `json:"dueDate"`
	EndDate     *time.Time            `json:"endDate"`
}

func (r UpdateProjectRequest) ToPatch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		ClientID:    r.ClientID,
		Status:      r.Status,
		BudgetTotal: r.BudgetTotal,
		StartDate:   r.StartDate,
		DueDate:     r.DueDate,
		EndDate:     r.EndDate,
	}
}

type CreateTaskRequest struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	Status       domain.TaskStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	AssignedTo   *int64            `json:"assignedTo" binding:"omitempty,gt=0"`
	StartDate    *time.Time        `json:"startDate"`
	EndDate      *time.Time        `json:"endDate"`
	Duration     *int              `json:"duration" binding:"omitempty,gte=0"`
	Dependencies []int64           `json:"dependencies"`
	Category     string            `json:"category"`
}

func (r CreateTaskRequest) ToTask(projectID int64) domain.ProjectTask {
	status := r.Status
	if status == "" {
		status = domain.TaskPending
	}
	deps := r.Dependencies
	if deps == nil {
		deps = []int64{}
	}
	return domain.ProjectTask{
		ProjectID:    projectID,
		Name:         r.Name,
		Description:  r.Description,
		Status:       status,
		AssignedTo:   r.AssignedTo,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Duration:     r.Duration,
		Dependencies: deps,
		Category:     r.Category,
	}
}

type UpdateTaskRequest struct {
	Name         *string            `json:"name" binding:"omitempty,min=1"`
	Description  *string            `json:"description"`
	Status       *domain.TaskStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	AssignedTo   *int64             `json:"assignedTo" binding:"omitempty,gt=0"`
	StartDate    *time.Time         `json:"startDate"`
	EndDate      *time.Time         `json:"endDate"`
	Duration     *int               `json:"duration" binding:"omitempty,gte=0"`
	Dependencies []int64            `json:"dependencies"`
	Category     *string            `json:"category"`
}

func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Name:         r.Name,
		Description:  r.Description,
		Status:       r.Status,
		AssignedTo:   r.AssignedTo,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Duration:     r.Duration,
		Dependencies: r.Dependencies,
		Category:     r.Category,
	}
}
