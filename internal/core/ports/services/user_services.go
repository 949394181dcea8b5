package services

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// ListUsers returns the members of the actor's company.
	ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error)
	GetUserByID(ctx context.Context, actor *domain.User, userID int64) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser lets admins change anything and other users change their own profile fields.
	UpdateUser(ctx context.Context, actor *domain.User, userID int64, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// CompanySvcFacade manages the actor's own company profile.
type CompanySvcFacade interface {
	GetCompany(ctx context.Context, actor *domain.User) (*domain.Company, error)
	UpdateCompany(ctx context.Context, actor *domain.User, req dto.UpdateCompanyRequest) (*domain.Company, error)
}
