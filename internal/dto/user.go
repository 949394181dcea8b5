package dto

import (
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// UserResponse is the public projection of a user: every field except the password hash.
type UserResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      domain.Role `json:"role"`
	CompanyID *int64      `json:"companyId"`
	Phone     string      `json:"phone,omitempty"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		Phone:     user.Phone,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain.User to public projections.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

// CreateUserRequest defines the data needed to create a user account.
type CreateUserRequest struct {
	Username  string      `json:"username" binding:"required,min=3,max=64"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=6"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Role      domain.Role `json:"role" binding:"required,oneof=admin employee subcontractor client"`
	CompanyID *int64      `json:"companyId"`
	Phone     string      `json:"phone"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Email     *string      `json:"email" binding:"omitempty,email"`
	Password  *string      `json:"password" binding:"omitempty,min=6"`
	FirstName *string      `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string      `json:"lastName" binding:"omitempty,min=1"`
	Phone     *string      `json:"phone"`
	Role      *domain.Role `json:"role" binding:"omitempty,oneof=admin employee subcontractor client"`
	CompanyID *int64       `json:"companyId"`
	IsActive  *bool        `json:"isActive"`
}

// ChangesPrivilegedFields reports whether the request touches fields only an admin may change.
func (r UpdateUserRequest) ChangesPrivilegedFields() bool {
	return r.Role != nil || r.CompanyID != nil || r.IsActive != nil
}

// UpdateCompanyRequest defines the editable company profile.
type UpdateCompanyRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	LicenseNumber *string `json:"licenseNumber"`
}

func (r UpdateCompanyRequest) ToPatch() domain.CompanyPatch {
	return domain.CompanyPatch{
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		LicenseNumber: r.LicenseNumber,
	}
}
