package domain

import "time"

type CostKind string

const (
	CostMaterials CostKind = "materials"
	CostLabor     CostKind = "labor"
	CostEquipment CostKind = "equipment"
	CostPermits   CostKind = "permits"
	CostOther     CostKind = "other"
)

// CostCategory tracks budget against actual spend for one line of a project.
// ActualAmount is maintained independently of BudgetAmount.
type CostCategory struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"projectId"`
	Name         string    `json:"name"`
	Category     CostKind  `json:"category,omitempty"`
	BudgetAmount *Money    `json:"budgetAmount"`
	ActualAmount Money     `json:"actualAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Variance is budget minus actual; a missing budget counts as zero.
func (c CostCategory) Variance() Money {
	budget := ZeroMoney()
	if c.BudgetAmount != nil {
		budget = *c.BudgetAmount
	}
	return budget.Sub(c.ActualAmount)
}

// OverBudget reports whether a budgeted category has spent more than planned.
func (c CostCategory) OverBudget() bool {
	return c.BudgetAmount != nil && c.ActualAmount.GreaterThan(*c.BudgetAmount)
}

func (c CostCategory) Clone() CostCategory {
	c.BudgetAmount = cloneMoney(c.BudgetAmount)
	return c
}

type CostCategoryPatch struct {
	Name         *string
	Category     *CostKind
	BudgetAmount *Money
	ActualAmount *Money
}

func (p CostCategoryPatch) Apply(c *CostCategory) {
	setIf(&c.Name, p.Name)
	setIf(&c.Category, p.Category)
	setIf(&c.ActualAmount, p.ActualAmount)
	if p.BudgetAmount != nil {
		c.BudgetAmount = cloneMoney(p.BudgetAmount)
	}
}

type ChangeOrderStatus string

const (
	ChangeOrderPending  ChangeOrderStatus = "pending"
	ChangeOrderApproved ChangeOrderStatus = "approved"
	ChangeOrderRejected ChangeOrderStatus = "rejected"
	// ChangeOrderSigned is reserved; no transition leads to it yet.
	ChangeOrderSigned ChangeOrderStatus = "signed"
)

// ChangeOrder is a priced scope change awaiting the client's decision.
// ApprovedBy and ApprovedAt are either both set or both nil.
type ChangeOrder struct {
	ID          int64             `json:"id"`
	ProjectID   int64             `json:"projectId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Amount      Money             `json:"amount"`
	Status      ChangeOrderStatus `json:"status"`
	CreatedBy   int64             `json:"createdBy"`
	ApprovedBy  *int64            `json:"approvedBy"`
	ApprovedAt  *time.Time        `json:"approvedAt"`
	SignedAt    *time.Time        `json:"signedAt"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (o ChangeOrder) Clone() ChangeOrder {
	o.ApprovedBy = cloneInt64(o.ApprovedBy)
	o.ApprovedAt = cloneTime(o.ApprovedAt)
	o.SignedAt = cloneTime(o.SignedAt)
	return o
}

type ChangeOrderPatch struct {
	Title       *string
	Description *string
	Amount      *Money
	Status      *ChangeOrderStatus
	ApprovedBy  *int64
	ApprovedAt  *time.Time
	SignedAt    *time.Time
}

func (p ChangeOrderPatch) Apply(o *ChangeOrder) {
	setIf(&o.Title, p.Title)
	setIf(&o.Description, p.Description)
	setIf(&o.Amount, p.Amount)
	setIf(&o.Status, p.Status)
	if p.ApprovedBy != nil {
		o.ApprovedBy = cloneInt64(p.ApprovedBy)
	}
	if p.ApprovedAt != nil {
		o.ApprovedAt = cloneTime(p.ApprovedAt)
	}
	if p.SignedAt != nil {
		o.SignedAt = cloneTime(p.SignedAt)
	}
}
