package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/SscSPs/fieldflow_pm/internal/utils"
)

// Demo credentials created by SeedDemoData.
const (
	DemoAdminUsername  = "admin"
	DemoAdminPassword  = "admin123"
	DemoClientUsername = "maria.johnson"
	DemoClientPassword = "client123"
)

// SeedDemoData fills an empty store with one company, an admin, a client and their jobs.
// It does nothing when the demo admin already exists.
func SeedDemoData(ctx context.Context, store portsrepo.Storage) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := store.FindUserByUsername(ctx, DemoAdminUsername); err == nil {
		logger.Info("Demo data already present, skipping seed")
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for demo data: %w", err)
	}

	company, err := store.CreateCompany(ctx, domain.Company{
		Name:          "ABC Construction",
		Address:       "123 Main St, Springfield",
		Phone:         "(555) 123-4567",
		Email:         "info@abcconstruction.com",
		LicenseNumber: "LIC123456",
	})
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	admin, err := seedUser(ctx, store, domain.User{
		Username:  DemoAdminUsername,
		Email:     "admin@abcconstruction.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      domain.RoleAdmin,
		CompanyID: domain.Int64Ptr(company.ID),
		Phone:     "(555) 123-4567",
	}, DemoAdminPassword)
	if err != nil {
		return err
	}

	client, err := seedUser(ctx, store, domain.User{
		Username:  DemoClientUsername,
		Email:     "maria@email.com",
		FirstName: "Maria",
		LastName:  "Johnson",
		Role:      domain.RoleClient,
		Phone:     "(555) 234-5678",
	}, DemoClientPassword)
	if err != nil {
		return err
	}

	kitchen, err := store.CreateProject(ctx, domain.Project{
		Name:        "Kitchen Remodel - Johnson Residence",
		Description: "Complete kitchen renovation including cabinets, countertops, and appliances",
		Address:     "1234 Oak Street, Springfield",
		CompanyID:   company.ID,
		ClientID:    client.ID,
		Status:      domain.ProjectActive,
		BudgetTotal: domain.MoneyPtr(domain.MustParseMoney("25000.00")),
		StartDate:   domain.TimePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		DueDate:     domain.TimePtr(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		return fmt.Errorf("failed to seed project: %w", err)
	}

	if _, err := store.CreateProject(ctx, domain.Project{
		Name:        "Bathroom Addition - Smith House",
		Description: "New bathroom addition with modern fixtures",
		Address:     "567 Pine Avenue, Springfield",
		CompanyID:   company.ID,
		ClientID:    client.ID,
		Status:      domain.ProjectActive,
		BudgetTotal: domain.MoneyPtr(domain.MustParseMoney("20000.00")),
		StartDate:   domain.TimePtr(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)),
		DueDate:     domain.TimePtr(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)),
	}); err != nil {
		return fmt.Errorf("failed to seed project: %w", err)
	}

	for _, c := range []domain.CostCategory{
		{Name: "Materials", Category: domain.CostMaterials, BudgetAmount: domain.MoneyPtr(domain.MustParseMoney("18000.00")), ActualAmount: domain.MustParseMoney("17450.00")},
		{Name: "Labor", Category: domain.CostLabor, BudgetAmount: domain.MoneyPtr(domain.MustParseMoney("15000.00")), ActualAmount: domain.MustParseMoney("16200.00")},
	} {
		c.ProjectID = kitchen.ID
		if _, err := store.CreateCostCategory(ctx, c); err != nil {
			return fmt.Errorf("failed to seed cost category: %w", err)
		}
	}

	if _, err := store.CreateChangeOrder(ctx, domain.ChangeOrder{
		ProjectID:   kitchen.ID,
		Title:       "CO-001: Kitchen Island Addition",
		Description: "Add kitchen island with granite countertop and electrical outlets",
		Amount:      domain.MustParseMoney("3200.00"),
		Status:      domain.ChangeOrderPending,
		CreatedBy:   admin.ID,
	}); err != nil {
		return fmt.Errorf("failed to seed change order: %w", err)
	}

	if _, err := store.CreateDailyLog(ctx, domain.DailyLog{
		ProjectID:   kitchen.ID,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Weather:     "Clear",
		Temperature: "72°F",
		Crew:        []string{"Mike", "Steve", "Tom"},
		Notes:       "Completed electrical rough-in for kitchen outlets. All work passed inspection.",
		CreatedBy:   admin.ID,
	}); err != nil {
		return fmt.Errorf("failed to seed daily log: %w", err)
	}

	logger.Info("Demo data seeded", slog.Int64("company_id", company.ID), slog.Int64("admin_id", admin.ID), slog.Int64("client_id", client.ID))
	return nil
}

func seedUser(ctx context.Context, store portsrepo.UserWriter, user domain.User, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	user.PasswordHash = hash
	user.IsActive = true
	created, err := store.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", user.Username, err)
	}
	return created, nil
}
