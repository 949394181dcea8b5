package domain

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Project is a construction job for one client, owned by one company.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Address     string        `json:"address"`
	CompanyID   int64         `json:"companyId"`
	ClientID    int64         `json:"clientId"`
	Status      ProjectStatus `json:"status"`
	BudgetTotal *Money        `json:"budgetTotal"`
	StartDate   *time.Time    `json:"startDate"`
	DueDate     *time.Time    `json:"dueDate"`
	EndDate     *time.Time    `json:"endDate"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (p Project) Clone() Project {
	p.BudgetTotal = cloneMoney(p.BudgetTotal)
	p.StartDate = cloneTime(p.StartDate)
	p.DueDate = cloneTime(p.DueDate)
	p.EndDate = cloneTime(p.EndDate)
	return p
}

type ProjectPatch struct {
	Name        *string
	Description *string
	Address     *string
	ClientID    *int64
	Status      *ProjectStatus
	BudgetTotal *Money
	StartDate   *time.Time
	DueDate     *time.Time
	EndDate     *time.Time
}

func (p ProjectPatch) Apply(pr *Project) {
	setIf(&pr.Name, p.Name)
	setIf(&pr.Description, p.Description)
	setIf(&pr.Address, p.Address)
	setIf(&pr.ClientID, p.ClientID)
	setIf(&pr.Status, p.Status)
	if p.BudgetTotal != nil {
		pr.BudgetTotal = cloneMoney(p.BudgetTotal)
	}
	if p.StartDate != nil {
		pr.StartDate = cloneTime(p.StartDate)
	}
	if p.DueDate != nil {
		pr.DueDate = cloneTime(p.DueDate)
	}
	if p.EndDate != nil {
		pr.EndDate = cloneTime(p.EndDate)
	}
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// ProjectTask is one schedule item of a project. Dependencies are informational only.
type ProjectTask struct {
	ID           int64      `json:"id"`
	ProjectID    int64      `json:"projectId"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Status       TaskStatus `json:"status"`
	AssignedTo   *int64     `json:"assignedTo"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Duration     *int       `json:"duration"`
	Dependencies []int64    `json:"dependencies"`
	Category     string     `json:"category,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (t ProjectTask) Clone() ProjectTask {
	t.AssignedTo = cloneInt64(t.AssignedTo)
	t.StartDate = cloneTime(t.StartDate)
	t.EndDate = cloneTime(t.EndDate)
	if t.Duration != nil {
		t.Duration = IntPtr(*t.Duration)
	}
	t.Dependencies = cloneSlice(t.Dependencies)
	return t
}

type TaskPatch struct {
	Name         *string
	Description  *string
	Status       *TaskStatus
	AssignedTo   *int64
	StartDate    *time.Time
	EndDate      *time.Time
	Duration     *int
	Dependencies []int64
	Category     *string
}

func (p TaskPatch) Apply(t *ProjectTask) {
	setIf(&t.Name, p.Name)
	setIf(&t.Description, p.Description)
	setIf(&t.Status, p.Status)
	setIf(&t.Category, p.Category)
	if p.AssignedTo != nil {
		t.AssignedTo = cloneInt64(p.AssignedTo)
	}
	if p.StartDate != nil {
		t.StartDate = cloneTime(p.StartDate)
	}
	if p.EndDate != nil {
		t.EndDate = cloneTime(p.EndDate)
	}
	if p.Duration != nil {
		t.Duration = IntPtr(*p.Duration)
	}
	if p.Dependencies != nil {
		t.Dependencies = cloneSlice(p.Dependencies)
	}
}
