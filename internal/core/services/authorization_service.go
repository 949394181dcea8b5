package services

import (
	"context"
	"slices"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
)

// Denial reasons surfaced to clients.
const (
	reasonInsufficientPermissions = "Insufficient permissions"
	reasonAccessDenied            = "Access denied"
)

// scope restricts a grant to resources owned in a particular way.
type scope int

const (
	// scopeAny matches every resource.
	scopeAny scope = iota
	// scopeCompany matches resources whose CompanyID is the actor's company.
	scopeCompany
	// scopeClient matches resources whose ClientID is the actor.
	scopeClient
	// scopeSelf matches resources whose OwnerUserID is the actor.
	scopeSelf
)

func (sc scope) matches(actor *domain.User, res domain.Resource) bool {
	switch sc {
	case scopeAny:
		return true
	case scopeCompany:
		return res.CompanyID != 0 && actor.InCompany(res.CompanyID)
	case scopeClient:
		return res.ClientID != 0 && res.ClientID == actor.ID
	case scopeSelf:
		return res.OwnerUserID != 0 && res.OwnerUserID == actor.ID
	}
	return false
}

type grant struct {
	actions []domain.Action
	scope   scope
}

// Policy is the declarative rule table: role -> resource kind -> grants.
type Policy map[domain.Role]map[domain.ResourceKind][]grant

var (
	readOnly  = []domain.Action{domain.ActionRead}
	crud      = []domain.Action{domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete}
	crudAndOK = []domain.Action{domain.ActionRead, domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete, domain.ActionApprove}
)

// selfService is granted to every role: a user may read and edit their own profile and notifications.
func selfService() map[domain.ResourceKind][]grant {
	return map[domain.ResourceKind][]grant{
		domain.ResourceUser:         {{actions: []domain.Action{domain.ActionRead, domain.ActionUpdate}, scope: scopeSelf}},
		domain.ResourceNotification: {{actions: []domain.Action{domain.ActionRead, domain.ActionUpdate}, scope: scopeSelf}},
	}
}

func withGrants(base map[domain.ResourceKind][]grant, extra map[domain.ResourceKind][]grant) map[domain.ResourceKind][]grant {
	for kind, grants := range extra {
		base[kind] = append(base[kind], grants...)
	}
	return base
}

// DefaultPolicy returns the role rules of the application.
func DefaultPolicy() Policy {
	adminKinds := []domain.ResourceKind{
		domain.ResourceProject, domain.ResourceTask, domain.ResourceCost, domain.ResourceChangeOrder,
		domain.ResourceDailyLog, domain.ResourceDocument, domain.ResourceContact,
		domain.ResourceNotification, domain.ResourceUser, domain.ResourceCompany,
	}
	admin := map[domain.ResourceKind][]grant{}
	for _, kind := range adminKinds {
		admin[kind] = []grant{{actions: crudAndOK, scope: scopeAny}}
	}

	employee := withGrants(selfService(), map[domain.ResourceKind][]grant{
		domain.ResourceProject:     {{actions: crud, scope: scopeCompany}},
		domain.ResourceTask:        {{actions: crud, scope: scopeCompany}},
		domain.ResourceCost:        {{actions: crud, scope: scopeCompany}},
		domain.ResourceChangeOrder: {{actions: crudAndOK, scope: scopeCompany}},
		domain.ResourceDailyLog:    {{actions: crud, scope: scopeCompany}},
		domain.ResourceDocument:    {{actions: crud, scope: scopeCompany}},
		domain.ResourceContact:     {{actions: crud, scope: scopeCompany}},
		domain.ResourceUser:        {{actions: readOnly, scope: scopeCompany}},
		domain.ResourceCompany:     {{actions: readOnly, scope: scopeCompany}},
	})

	// Subcontractors see the schedule and site records of their company's jobs, nothing financial.
	subcontractor := withGrants(selfService(), map[domain.ResourceKind][]grant{
		domain.ResourceProject:  {{actions: readOnly, scope: scopeCompany}},
		domain.ResourceTask:     {{actions: readOnly, scope: scopeCompany}},
		domain.ResourceDailyLog: {{actions: readOnly, scope: scopeCompany}},
		domain.ResourceDocument: {{actions: readOnly, scope: scopeCompany}},
		domain.ResourceCompany:  {{actions: readOnly, scope: scopeCompany}},
	})

	client := withGrants(selfService(), map[domain.ResourceKind][]grant{
		domain.ResourceProject:     {{actions: readOnly, scope: scopeClient}},
		domain.ResourceTask:        {{actions: readOnly, scope: scopeClient}},
		domain.ResourceCost:        {{actions: readOnly, scope: scopeClient}},
		domain.ResourceChangeOrder: {{actions: []domain.Action{domain.ActionRead, domain.ActionApprove}, scope: scopeClient}},
		domain.ResourceDailyLog:    {{actions: readOnly, scope: scopeClient}},
		domain.ResourceDocument:    {{actions: readOnly, scope: scopeClient}},
	})

	return Policy{
		domain.RoleAdmin:         admin,
		domain.RoleEmployee:      employee,
		domain.RoleSubcontractor: subcontractor,
		domain.RoleClient:        client,
	}
}

type authorizationService struct {
	policy Policy
}

// NewAuthorizationService creates the gate. A nil policy means DefaultPolicy.
func NewAuthorizationService(policy Policy) portssvc.AuthorizerSvc {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &authorizationService{policy: policy}
}

var _ portssvc.AuthorizerSvc = (*authorizationService)(nil)

// Authorize allows the action when any grant of the actor's role covers both the action
// and the resource's ownership. A role that never has the action gets "Insufficient
// permissions"; one that has it for other owners gets "Access denied".
func (s *authorizationService) Authorize(_ context.Context, actor *domain.User, action domain.Action, res domain.Resource) error {
	if actor == nil {
		return apperrors.New(apperrors.ErrUnauthenticated, "Authentication required")
	}
	if !actor.IsActive {
		return apperrors.Forbidden(reasonAccessDenied)
	}

	actionGranted := false
	for _, g := range s.policy[actor.Role][res.Kind] {
		if !slices.Contains(g.actions, action) {
			continue
		}
		actionGranted = true
		if g.scope.matches(actor, res) {
			return nil
		}
	}

	if actionGranted {
		return apperrors.Forbidden(reasonAccessDenied)
	}
	return apperrors.Forbidden(reasonInsufficientPermissions)
}
