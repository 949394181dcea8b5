package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	names, err := fs.Glob(files, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups[strings.TrimSuffix(n, ".up.sql")] = true
		case strings.HasSuffix(n, ".down.sql"):
			downs[strings.TrimSuffix(n, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", n)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestEmbeddedSourceOpens(t *testing.T) {
	src, err := iofs.New(files, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

func TestSchemaUsesSharedHandleSequence(t *testing.T) {
	raw, err := files.ReadFile("000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	for _, table := range []string{"companies", "users", "projects", "project_tasks", "cost_categories",
		"change_orders", "daily_logs", "documents", "contacts", "notifications"} {
		assert.Contains(t, schema, "CREATE TABLE "+table+" (")
	}
	assert.Equal(t, 10, strings.Count(schema, "DEFAULT nextval('entity_handle_seq')"))
}
