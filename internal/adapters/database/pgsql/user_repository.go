package pgsql

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, role, company_id, phone, is_active, created_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Role, &u.CompanyID, &u.Phone, &u.IsActive, &u.CreatedAt)
	return u, err
}

func (s *Store) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return queryOne(ctx, s.db, scanUser, "find user by id",
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return queryOne(ctx, s.db, scanUser, "find user by username",
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return queryOne(ctx, s.db, scanUser, "find user by email",
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (s *Store) ListUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	return queryList(ctx, s.db, scanUser, "list users",
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY id`, companyID)
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	return queryOne(ctx, s.db, scanUser, "create user", `
        INSERT INTO users (username, email, password_hash, first_name, last_name, role, company_id, phone, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+userColumns,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		string(user.Role), user.CompanyID, user.Phone, user.IsActive)
}

func (s *Store) UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error) {
	return queryOne(ctx, s.db, scanUser, "update user", `
        UPDATE users SET
            username = COALESCE($2, username),
            email = COALESCE($3, email),
            password_hash = COALESCE($4, password_hash),
            first_name = COALESCE($5, first_name),
            last_name = COALESCE($6, last_name),
            role = COALESCE($7, role),
            company_id = COALESCE($8, company_id),
            phone = COALESCE($9, phone),
            is_active = COALESCE($10, is_active)
        WHERE id = $1
        RETURNING `+userColumns,
		userID, patch.Username, patch.Email, patch.PasswordHash, patch.FirstName, patch.LastName,
		patch.Role, patch.CompanyID, patch.Phone, patch.IsActive)
}

func (s *Store) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	return deleteByID(ctx, s.db, "users", userID)
}

const companyColumns = `id, name, address, phone, email, license_number, created_at`

func scanCompany(row pgx.Row) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.LicenseNumber, &c.CreatedAt)
	return c, err
}

func (s *Store) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	return queryOne(ctx, s.db, scanCompany, "find company",
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, companyID)
}

func (s *Store) CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	return queryOne(ctx, s.db, scanCompany, "create company", `
        INSERT INTO companies (name, address, phone, email, license_number)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+companyColumns,
		company.Name, company.Address, company.Phone, company.Email, company.LicenseNumber)
}

func (s *Store) UpdateCompany(ctx context.Context, companyID int64, patch domain.CompanyPatch) (*domain.Company, error) {
	return queryOne(ctx, s.db, scanCompany, "update company", `
        UPDATE companies SET
            name = COALESCE($2, name),
            address = COALESCE($3, address),
            phone = COALESCE($4, phone),
            email = COALESCE($5, email),
            license_number = COALESCE($6, license_number)
        WHERE id = $1
        RETURNING `+companyColumns,
		companyID, patch.Name, patch.Address, patch.Phone, patch.Email, patch.LicenseNumber)
}

func (s *Store) DeleteCompany(ctx context.Context, companyID int64) (bool, error) {
	return deleteByID(ctx, s.db, "companies", companyID)
}
