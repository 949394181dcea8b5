package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

type projectService struct {
	BaseService
	projects portsrepo.ProjectRepositoryFacade
	users    portsrepo.UserReader
}

// NewProjectService creates a new project service.
func NewProjectService(projects portsrepo.ProjectRepositoryFacade, users portsrepo.UserReader, authorizer portssvc.AuthorizerSvc) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{Authorizer: authorizer, Projects: projects},
		projects:    projects,
		users:       users,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// ListProjects returns the projects visible to the caller: a client's own jobs, or every
// project of a staff member's company. Anyone else sees nothing.
func (s *projectService) ListProjects(ctx context.Context, actor *domain.User) ([]domain.Project, error) {
	if actor == nil {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	}

	var (
		projects []domain.Project
		err      error
	)
	switch {
	case actor.Role == domain.RoleClient:
		projects, err = s.projects.ListProjectsByClient(ctx, actor.ID)
	case actor.CompanyID != nil:
		projects, err = s.projects.ListProjectsByCompany(ctx, *actor.CompanyID)
	default:
		return []domain.Project{}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, actor *domain.User, projectID int64) (*domain.Project, error) {
	return s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceProject, domain.ActionRead)
}

// validateClient checks that clientID names an existing user with the client role.
func (s *projectService) validateClient(ctx context.Context, clientID int64) error {
	client, err := s.users.FindUserByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidation("Invalid client", apperrors.FieldError{Field: "clientId", Message: "must reference an existing client"})
		}
		return fmt.Errorf("failed to load client: %w", err)
	}
	if client.Role != domain.RoleClient {
		return apperrors.NewValidation("Invalid client", apperrors.FieldError{Field: "clientId", Message: "user is not a client"})
	}
	return nil
}

func (s *projectService) CreateProject(ctx context.Context, actor *domain.User, req dto.CreateProjectRequest) (*domain.Project, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceProject, CompanyID: companyID}); err != nil {
		return nil, err
	}
	if err := s.validateClient(ctx, req.ClientID); err != nil {
		return nil, err
	}

	created, err := s.projects.CreateProject(ctx, req.ToProject(companyID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create project")
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	s.GetLogger(ctx).Info("Project created", slog.Int64("project_id", created.ID), slog.Int64("company_id", companyID))
	return created, nil
}

func (s *projectService) UpdateProject(ctx context.Context, actor *domain.User, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceProject, domain.ActionUpdate); err != nil {
		return nil, err
	}
	if req.ClientID != nil {
		if err := s.validateClient(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}

	updated, err := s.projects.UpdateProject(ctx, projectID, req.ToPatch())
	if err != nil {
		return nil, notFoundOr(err, "Project", "failed to update project")
	}
	s.GetLogger(ctx).Info("Project updated", slog.Int64("project_id", projectID))
	return updated, nil
}

// DeleteProject removes only the project record; dependent rows are left in place.
func (s *projectService) DeleteProject(ctx context.Context, actor *domain.User, projectID int64) error {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceProject, domain.ActionDelete); err != nil {
		return err
	}
	removed, err := s.projects.DeleteProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.Int64("project_id", projectID))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !removed {
		return apperrors.NotFound("Project")
	}
	s.GetLogger(ctx).Info("Project deleted", slog.Int64("project_id", projectID))
	return nil
}

type taskService struct {
	BaseService
	tasks portsrepo.TaskRepositoryFacade
	users portsrepo.UserReader
}

// NewTaskService creates the schedule service for project tasks.
func NewTaskService(tasks portsrepo.TaskRepositoryFacade, projects portsrepo.ProjectReader, users portsrepo.UserReader, authorizer portssvc.AuthorizerSvc) portssvc.TaskSvcFacade {
	return &taskService{
		BaseService: BaseService{Authorizer: authorizer, Projects: projects},
		tasks:       tasks,
		users:       users,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) validateAssignee(ctx context.Context, assignee *int64) error {
	if assignee == nil {
		return nil
	}
	if _, err := s.users.FindUserByID(ctx, *assignee); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidation("Invalid assignee", apperrors.FieldError{Field: "assignedTo", Message: "must reference an existing user"})
		}
		return fmt.Errorf("failed to load assignee: %w", err)
	}
	return nil
}

// loadTask fetches a task and checks action against its project.
func (s *taskService) loadTask(ctx context.Context, actor *domain.User, taskID int64, action domain.Action) (*domain.ProjectTask, error) {
	task, err := s.tasks.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "Task", "failed to load task")
	}
	if _, err := s.AuthorizeProjectAction(ctx, actor, task.ProjectID, domain.ResourceTask, action); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, actor *domain.User, projectID int64) ([]domain.ProjectTask, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceTask, domain.ActionRead); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListTasksByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateTaskRequest) (*domain.ProjectTask, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceTask, domain.ActionCreate); err != nil {
		return nil, err
	}
	if err := s.validateAssignee(ctx, req.AssignedTo); err != nil {
		return nil, err
	}
	created, err := s.tasks.CreateTask(ctx, req.ToTask(projectID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create task", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	s.GetLogger(ctx).Info("Task created", slog.Int64("task_id", created.ID), slog.Int64("project_id", projectID))
	return created, nil
}

func (s *taskService) UpdateTask(ctx context.Context, actor *domain.User, taskID int64, req dto.UpdateTaskRequest) (*domain.ProjectTask, error) {
	if _, err := s.loadTask(ctx, actor, taskID, domain.ActionUpdate); err != nil {
		return nil, err
	}
	if err := s.validateAssignee(ctx, req.AssignedTo); err != nil {
		return nil, err
	}
	updated, err := s.tasks.UpdateTask(ctx, taskID, req.ToPatch())
	if err != nil {
		return nil, notFoundOr(err, "Task", "failed to update task")
	}
	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, actor *domain.User, taskID int64) error {
	if _, err := s.loadTask(ctx, actor, taskID, domain.ActionDelete); err != nil {
		return err
	}
	removed, err := s.tasks.DeleteTask(ctx, taskID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.Int64("task_id", taskID))
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !removed {
		return apperrors.NotFound("Task")
	}
	return nil
}
