// Package pgsql is the PostgreSQL implementation of the entity store.
// Every table draws its id from entity_handle_seq, so handles are unique across entity types
// and ORDER BY id is insertion order.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of *pgxpool.Pool the store uses. pgxmock.PgxPoolIface satisfies it too.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Store implements portsrepo.Storage on PostgreSQL.
type Store struct {
	db PgxPool
}

var _ portsrepo.Storage = (*Store)(nil)

func NewStore(db PgxPool) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}

// translate maps driver errors onto the store's error kinds.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.ErrNotFound
	case isUniqueViolation(err):
		return apperrors.ErrDuplicate
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

// rowScanner scans one row into a T. pgx.Rows satisfies pgx.Row, so one scanner serves both paths.
type rowScanner[T any] func(pgx.Row) (T, error)

func queryOne[T any](ctx context.Context, db PgxPool, scan rowScanner[T], what, query string, args ...any) (*T, error) {
	v, err := scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translate(err, what)
	}
	return &v, nil
}

// queryList returns the matching rows; the slice is empty, never nil, when nothing matches.
func queryList[T any](ctx context.Context, db PgxPool, scan rowScanner[T], what, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, what)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row (%s): %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows (%s): %w", what, err)
	}
	return out, nil
}

// deleteByID removes one row. Deleting a missing id is not an error.
func deleteByID(ctx context.Context, db PgxPool, table string, id int64) (bool, error) {
	tag, err := db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Monetary columns are NUMERIC(14,2). They are written as text and read back with ::text
// so no precision passes through floating point.

func moneyArg(m domain.Money) string {
	return m.String()
}

func moneyPtrArg(m *domain.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func parseMoney(s string) (domain.Money, error) {
	return domain.ParseMoney(s)
}

func parseMoneyPtr(s *string) (*domain.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := domain.ParseMoney(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func int64sOrEmpty(s []int64) []int64 {
	if s == nil {
		return []int64{}
	}
	return s
}
