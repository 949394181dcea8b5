package domain

// Action is an operation a caller wants to perform on a resource.
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
)

// ResourceKind names the entity type an action targets.
type ResourceKind string

const (
	ResourceProject      ResourceKind = "project"
	ResourceTask         ResourceKind = "task"
	ResourceCost         ResourceKind = "cost"
	ResourceChangeOrder  ResourceKind = "change_order"
	ResourceDailyLog     ResourceKind = "daily_log"
	ResourceDocument     ResourceKind = "document"
	ResourceContact      ResourceKind = "contact"
	ResourceNotification ResourceKind = "notification"
	ResourceUser         ResourceKind = "user"
	ResourceCompany      ResourceKind = "company"
)

// Resource describes the ownership of the target of an action.
// Zero values mean "not applicable"; a project-scoped resource carries the
// project's company and client.
type Resource struct {
	Kind        ResourceKind
	ID          int64
	CompanyID   int64
	ClientID    int64
	OwnerUserID int64
}

// ProjectResource builds the descriptor for a project or anything hanging off it.
func ProjectResource(kind ResourceKind, p *Project) Resource {
	return Resource{Kind: kind, ID: p.ID, CompanyID: p.CompanyID, ClientID: p.ClientID}
}
