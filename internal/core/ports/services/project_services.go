package services

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

// ProjectReaderSvc defines read operations for projects
type ProjectReaderSvc interface {
	// ListProjects returns the client's own projects for clients and the company's projects otherwise.
	ListProjects(ctx context.Context, actor *domain.User) ([]domain.Project, error)
	GetProject(ctx context.Context, actor *domain.User, projectID int64) (*domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, actor *domain.User, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor *domain.User, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, actor *domain.User, projectID int64) error
}

type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}

// TaskSvcFacade manages the schedule of a project.
type TaskSvcFacade interface {
	ListTasks(ctx context.Context, actor *domain.User, projectID int64) ([]domain.ProjectTask, error)
	CreateTask(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateTaskRequest) (*domain.ProjectTask, error)
	UpdateTask(ctx context.Context, actor *domain.User, taskID int64, req dto.UpdateTaskRequest) (*domain.ProjectTask, error)
	DeleteTask(ctx context.Context, actor *domain.User, taskID int64) error
}
