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
	"github.com/SscSPs/fieldflow_pm/internal/utils"
)

const duplicateUserMessage = "Username or email already exists"

type userService struct {
	BaseService
	users portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(users portsrepo.UserRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Authorizer: authorizer},
		users:       users,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func userResource(u *domain.User) domain.Resource {
	res := domain.Resource{Kind: domain.ResourceUser, ID: u.ID, OwnerUserID: u.ID}
	if u.CompanyID != nil {
		res.CompanyID = *u.CompanyID
	}
	return res
}

func (s *userService) ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, domain.ActionRead, domain.Resource{Kind: domain.ResourceUser, CompanyID: companyID}); err != nil {
		return nil, err
	}
	users, err := s.users.ListUsersByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.Int64("company_id", companyID))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, actor *domain.User, userID int64) (*domain.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User", "failed to load user")
	}
	if err := s.Authorize(ctx, actor, domain.ActionRead, userResource(user)); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, error) {
	logger := s.GetLogger(ctx)

	companyID := req.CompanyID
	if companyID == nil && req.Role != domain.RoleClient && actor != nil && actor.CompanyID != nil {
		companyID = domain.Int64Ptr(*actor.CompanyID)
	}
	target := domain.Resource{Kind: domain.ResourceUser}
	if companyID != nil {
		target.CompanyID = *companyID
	}
	if err := s.Authorize(ctx, actor, domain.ActionCreate, target); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		CompanyID:    companyID,
		Phone:        req.Phone,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicate, duplicateUserMessage, err)
		}
		s.LogError(ctx, err, "Failed to create user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User created", slog.Int64("user_id", created.ID), slog.String("role", string(created.Role)))
	return created, nil
}

// UpdateUser lets admins change anything and everyone else edit only their own profile fields.
func (s *userService) UpdateUser(ctx context.Context, actor *domain.User, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User", "failed to load user")
	}
	if err := s.Authorize(ctx, actor, domain.ActionUpdate, userResource(user)); err != nil {
		return nil, err
	}
	if req.ChangesPrivilegedFields() && actor.Role != domain.RoleAdmin {
		s.GetLogger(ctx).Warn("Rejected privileged profile change", slog.Int64("target_user_id", userID))
		return nil, apperrors.Forbidden(reasonInsufficientPermissions)
	}

	patch := domain.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		CompanyID: req.CompanyID,
		IsActive:  req.IsActive,
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.users.UpdateUser(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicate, duplicateUserMessage, err)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		s.LogError(ctx, err, "Failed to update user", slog.Int64("target_user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.GetLogger(ctx).Info("User updated", slog.Int64("target_user_id", userID))
	return updated, nil
}

type companyService struct {
	BaseService
	companies portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the service for the caller's own company profile.
func NewCompanyService(companies portsrepo.CompanyRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.CompanySvcFacade {
	return &companyService{
		BaseService: BaseService{Authorizer: authorizer},
		companies:   companies,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompany(ctx context.Context, actor *domain.User) (*domain.Company, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, notFoundOr(err, "Company", "failed to load company")
	}
	res := domain.Resource{Kind: domain.ResourceCompany, ID: company.ID, CompanyID: company.ID}
	if err := s.Authorize(ctx, actor, domain.ActionRead, res); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, actor *domain.User, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return nil, err
	}
	if _, err := s.companies.FindCompanyByID(ctx, companyID); err != nil {
		return nil, notFoundOr(err, "Company", "failed to load company")
	}
	res := domain.Resource{Kind: domain.ResourceCompany, ID: companyID, CompanyID: companyID}
	if err := s.Authorize(ctx, actor, domain.ActionUpdate, res); err != nil {
		return nil, err
	}
	updated, err := s.companies.UpdateCompany(ctx, companyID, req.ToPatch())
	if err != nil {
		return nil, notFoundOr(err, "Company", "failed to update company")
	}
	s.GetLogger(ctx).Info("Company updated", slog.Int64("company_id", companyID))
	return updated, nil
}
