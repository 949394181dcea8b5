package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	gate := services.NewAuthorizationService(nil)
	ctx := context.Background()

	admin := &domain.User{ID: 1, Role: domain.RoleAdmin, CompanyID: domain.Int64Ptr(1), IsActive: true}
	employee := &domain.User{ID: 2, Role: domain.RoleEmployee, CompanyID: domain.Int64Ptr(1), IsActive: true}
	sub := &domain.User{ID: 3, Role: domain.RoleSubcontractor, CompanyID: domain.Int64Ptr(1), IsActive: true}
	client := &domain.User{ID: 4, Role: domain.RoleClient, IsActive: true}
	inactive := &domain.User{ID: 5, Role: domain.RoleAdmin, CompanyID: domain.Int64Ptr(1)}

	ownProject := &domain.Project{ID: 10, CompanyID: 1, ClientID: 4}
	foreignProject := &domain.Project{ID: 11, CompanyID: 2, ClientID: 99}

	testCases := []struct {
		name    string
		actor   *domain.User
		action  domain.Action
		res     domain.Resource
		wantErr error
		wantMsg string
	}{
		{name: "nil actor", actor: nil, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceProject, ownProject), wantErr: apperrors.ErrUnauthenticated, wantMsg: "Authentication required"},
		{name: "inactive actor", actor: inactive, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceProject, ownProject), wantErr: apperrors.ErrForbidden},
		{name: "admin any project", actor: admin, action: domain.ActionDelete, res: domain.ProjectResource(domain.ResourceProject, foreignProject)},
		{name: "employee own company", actor: employee, action: domain.ActionUpdate, res: domain.ProjectResource(domain.ResourceTask, ownProject)},
		{name: "employee foreign company", actor: employee, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceProject, foreignProject), wantErr: apperrors.ErrForbidden, wantMsg: "Access denied"},
		{name: "employee approves change order", actor: employee, action: domain.ActionApprove, res: domain.ProjectResource(domain.ResourceChangeOrder, ownProject)},
		{name: "employee cannot create users", actor: employee, action: domain.ActionCreate, res: domain.Resource{Kind: domain.ResourceUser, CompanyID: 1}, wantErr: apperrors.ErrForbidden, wantMsg: "Insufficient permissions"},
		{name: "subcontractor reads tasks", actor: sub, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceTask, ownProject)},
		{name: "subcontractor cannot read costs", actor: sub, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceCost, ownProject), wantErr: apperrors.ErrForbidden, wantMsg: "Insufficient permissions"},
		{name: "subcontractor cannot write logs", actor: sub, action: domain.ActionCreate, res: domain.ProjectResource(domain.ResourceDailyLog, ownProject), wantErr: apperrors.ErrForbidden},
		{name: "client reads own project", actor: client, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceProject, ownProject)},
		{name: "client reads foreign project", actor: client, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceProject, foreignProject), wantErr: apperrors.ErrForbidden, wantMsg: "Access denied"},
		{name: "client approves own change order", actor: client, action: domain.ActionApprove, res: domain.ProjectResource(domain.ResourceChangeOrder, ownProject)},
		{name: "client cannot edit project", actor: client, action: domain.ActionUpdate, res: domain.ProjectResource(domain.ResourceProject, ownProject), wantErr: apperrors.ErrForbidden, wantMsg: "Insufficient permissions"},
		{name: "client cannot list contacts", actor: client, action: domain.ActionRead, res: domain.Resource{Kind: domain.ResourceContact, CompanyID: 1}, wantErr: apperrors.ErrForbidden},
		{name: "self profile update", actor: client, action: domain.ActionUpdate, res: domain.Resource{Kind: domain.ResourceUser, ID: 4, OwnerUserID: 4}},
		{name: "other profile update", actor: client, action: domain.ActionUpdate, res: domain.Resource{Kind: domain.ResourceUser, ID: 1, OwnerUserID: 1, CompanyID: 1}, wantErr: apperrors.ErrForbidden, wantMsg: "Access denied"},
		{name: "own notification", actor: sub, action: domain.ActionUpdate, res: domain.Resource{Kind: domain.ResourceNotification, ID: 7, OwnerUserID: 3}},
		{name: "someone else's notification", actor: employee, action: domain.ActionUpdate, res: domain.Resource{Kind: domain.ResourceNotification, ID: 7, OwnerUserID: 3}, wantErr: apperrors.ErrForbidden},
		{name: "company scope needs a company", actor: &domain.User{ID: 6, Role: domain.RoleEmployee, IsActive: true}, action: domain.ActionRead, res: domain.ProjectResource(domain.ResourceProject, ownProject), wantErr: apperrors.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := gate.Authorize(ctx, tc.actor, tc.action, tc.res)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, apperrors.MessageOf(err, ""))
			}
		})
	}
}

func TestAuthorize_CustomPolicy(t *testing.T) {
	gate := services.NewAuthorizationService(services.Policy{})
	actor := &domain.User{ID: 1, Role: domain.RoleAdmin, IsActive: true}

	err := gate.Authorize(context.Background(), actor, domain.ActionRead, domain.Resource{Kind: domain.ResourceProject})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
