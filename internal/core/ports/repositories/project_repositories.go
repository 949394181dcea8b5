package repositories

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)

	// ListProjectsByCompany returns the company's projects in creation order, or an empty slice.
	ListProjectsByCompany(ctx context.Context, companyID int64) ([]domain.Project, error)

	// ListProjectsByClient returns exactly the projects whose ClientID is clientID.
	ListProjectsByClient(ctx context.Context, clientID int64) ([]domain.Project, error)
}

// ProjectWriter defines write operations for projects.
// UpdateProject refreshes UpdatedAt and never creates a missing project.
type ProjectWriter interface {
	CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID int64, patch domain.ProjectPatch) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID int64) (bool, error)
}

type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}

// TaskReader defines read operations for project tasks.
type TaskReader interface {
	FindTaskByID(ctx context.Context, taskID int64) (*domain.ProjectTask, error)
	ListTasksByProject(ctx context.Context, projectID int64) ([]domain.ProjectTask, error)
}

// TaskWriter defines write operations for project tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task domain.ProjectTask) (*domain.ProjectTask, error)
	UpdateTask(ctx context.Context, taskID int64, patch domain.TaskPatch) (*domain.ProjectTask, error)
	DeleteTask(ctx context.Context, taskID int64) (bool, error)
}

type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
