package repositories

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// UserReader defines read operations for user data.
// Lookups of a missing user return apperrors.ErrNotFound.
type UserReader interface {
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername matches the username exactly.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByCompany returns the members of a company in creation order.
	ListUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
// Username and email are unique; a clash returns apperrors.ErrDuplicate.
type UserWriter interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID int64, patch domain.CompanyPatch) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID int64) (bool, error)
}

type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
