package domain

import "time"

// Role is the coarse permission class of a user.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleEmployee      Role = "employee"
	RoleSubcontractor Role = "subcontractor"
	RoleClient        Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleSubcontractor, RoleClient:
		return true
	}
	return false
}

// IsStaff reports whether the role belongs to the contractor side (admin or employee).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is an account that can log in. PasswordHash never leaves the process.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         Role      `json:"role"`
	CompanyID    *int64    `json:"companyId"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// InCompany reports whether the user belongs to the given company.
func (u User) InCompany(companyID int64) bool {
	return u.CompanyID != nil && *u.CompanyID == companyID
}

// UserPatch holds the fields of a partial user update; nil means unchanged.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Role         *Role
	CompanyID    *int64
	Phone        *string
	IsActive     *bool
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	setIf(&u.Username, p.Username)
	setIf(&u.Email, p.Email)
	setIf(&u.PasswordHash, p.PasswordHash)
	setIf(&u.FirstName, p.FirstName)
	setIf(&u.LastName, p.LastName)
	setIf(&u.Role, p.Role)
	setIf(&u.Phone, p.Phone)
	setIf(&u.IsActive, p.IsActive)
	if p.CompanyID != nil {
		u.CompanyID = Int64Ptr(*p.CompanyID)
	}
}

// Company is the contractor organisation that owns projects and contacts.
type Company struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	LicenseNumber string    `json:"licenseNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CompanyPatch struct {
	Name          *string
	Address       *string
	Phone         *string
	Email         *string
	LicenseNumber *string
}

func (p CompanyPatch) Apply(c *Company) {
	setIf(&c.Name, p.Name)
	setIf(&c.Address, p.Address)
	setIf(&c.Phone, p.Phone)
	setIf(&c.Email, p.Email)
	setIf(&c.LicenseNumber, p.LicenseNumber)
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	u.CompanyID = cloneInt64(u.CompanyID)
	return u
}
