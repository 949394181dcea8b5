package pgsql

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, name, description, address, company_id, client_id, status,
    budget_total::text, start_date, due_date, end_date, created_at, updated_at`

func scanProject(row pgx.Row) (domain.Project, error) {
	var (
		p      domain.Project
		budget *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Address, &p.CompanyID, &p.ClientID, &p.Status,
		&budget, &p.StartDate, &p.DueDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	var err error
	p.BudgetTotal, err = parseMoneyPtr(budget)
	return p, err
}

func (s *Store) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	return queryOne(ctx, s.db, scanProject, "find project",
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, projectID)
}

func (s *Store) ListProjectsByCompany(ctx context.Context, companyID int64) ([]domain.Project, error) {
	return queryList(ctx, s.db, scanProject, "list projects by company",
		`SELECT `+projectColumns+` FROM projects WHERE company_id = $1 ORDER BY id`, companyID)
}

func (s *Store) ListProjectsByClient(ctx context.Context, clientID int64) ([]domain.Project, error) {
	return queryList(ctx, s.db, scanProject, "list projects by client",
		`SELECT `+projectColumns+` FROM projects WHERE client_id = $1 ORDER BY id`, clientID)
}

func (s *Store) CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	return queryOne(ctx, s.db, scanProject, "create project", `
        INSERT INTO projects (name, description, address, company_id, client_id, status, budget_total, start_date, due_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10)
        RETURNING `+projectColumns,
		project.Name, project.Description, project.Address, project.CompanyID, project.ClientID,
		string(project.Status), moneyPtrArg(project.BudgetTotal), project.StartDate, project.DueDate, project.EndDate)
}

func (s *Store) UpdateProject(ctx context.Context, projectID int64, patch domain.ProjectPatch) (*domain.Project, error) {
	return queryOne(ctx, s.db, scanProject, "update project", `
        UPDATE projects SET
            name = COALESCE($2, name),
            description = COALESCE($3, description),
            address = COALESCE($4, address),
            client_id = COALESCE($5, client_id),
            status = COALESCE($6, status),
            budget_total = COALESCE($7::numeric, budget_total),
            start_date = COALESCE($8, start_date),
            due_date = COALESCE($9, due_date),
            end_date = COALESCE($10, end_date),
            updated_at = now()
        WHERE id = $1
        RETURNING `+projectColumns,
		projectID, patch.Name, patch.Description, patch.Address, patch.ClientID, patch.Status,
		moneyPtrArg(patch.BudgetTotal), patch.StartDate, patch.DueDate, patch.EndDate)
}

func (s *Store) DeleteProject(ctx context.Context, projectID int64) (bool, error) {
	return deleteByID(ctx, s.db, "projects", projectID)
}

const taskColumns = `id, project_id, name, description, status, assigned_to, start_date, end_date,
    duration, dependencies, category, created_at`

func scanTask(row pgx.Row) (domain.ProjectTask, error) {
	var t domain.ProjectTask
	err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.Status, &t.AssignedTo,
		&t.StartDate, &t.EndDate, &t.Duration, &t.Dependencies, &t.Category, &t.CreatedAt)
	t.Dependencies = int64sOrEmpty(t.Dependencies)
	return t, err
}

func (s *Store) FindTaskByID(ctx context.Context, taskID int64) (*domain.ProjectTask, error) {
	return queryOne(ctx, s.db, scanTask, "find task",
		`SELECT `+taskColumns+` FROM project_tasks WHERE id = $1`, taskID)
}

func (s *Store) ListTasksByProject(ctx context.Context, projectID int64) ([]domain.ProjectTask, error) {
	return queryList(ctx, s.db, scanTask, "list tasks",
		`SELECT `+taskColumns+` FROM project_tasks WHERE project_id = $1 ORDER BY id`, projectID)
}

func (s *Store) CreateTask(ctx context.Context, task domain.ProjectTask) (*domain.ProjectTask, error) {
	return queryOne(ctx, s.db, scanTask, "create task", `
        INSERT INTO project_tasks (project_id, name, description, status, assigned_to, start_date, end_date, duration, dependencies, category)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+taskColumns,
		task.ProjectID, task.Name, task.Description, string(task.Status), task.AssignedTo,
		task.StartDate, task.EndDate, task.Duration, int64sOrEmpty(task.Dependencies), task.Category)
}

func (s *Store) UpdateTask(ctx context.Context, taskID int64, patch domain.TaskPatch) (*domain.ProjectTask, error) {
	return queryOne(ctx, s.db, scanTask, "update task", `
        UPDATE project_tasks SET
            name = COALESCE($2, name),
            description = COALESCE($3, description),
            status = COALESCE($4, status),
            assigned_to = COALESCE($5, assigned_to),
            start_date = COALESCE($6, start_date),
            end_date = COALESCE($7, end_date),
            duration = COALESCE($8, duration),
            dependencies = COALESCE($9, dependencies),
            category = COALESCE($10, category)
        WHERE id = $1
        RETURNING `+taskColumns,
		taskID, patch.Name, patch.Description, patch.Status, patch.AssignedTo,
		patch.StartDate, patch.EndDate, patch.Duration, patch.Dependencies, patch.Category)
}

func (s *Store) DeleteTask(ctx context.Context, taskID int64) (bool, error) {
	return deleteByID(ctx, s.db, "project_tasks", taskID)
}
