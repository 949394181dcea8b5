package repositories

import "context"

// Storage is the complete entity store. Every engine (in-memory, PostgreSQL)
// implements it with the same semantics:
//   - handles come from one counter shared by all entity types
//   - a missing id yields apperrors.ErrNotFound, never a panic
//   - scoped lists are in insertion order and empty (not nil) when nothing matches
//   - returned records are copies
type Storage interface {
	UserRepositoryFacade
	CompanyRepositoryFacade
	ProjectRepositoryFacade
	TaskRepositoryFacade
	CostCategoryRepositoryFacade
	ChangeOrderRepositoryFacade
	DailyLogRepositoryFacade
	DocumentRepositoryFacade
	ContactRepositoryFacade
	NotificationRepositoryFacade

	// Ping reports whether the backing engine is reachable.
	Ping(ctx context.Context) error
}
