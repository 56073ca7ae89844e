package database

import (
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/000001_create_watchlist_entries.up.sql")
	assert.Contains(t, files, "migrations/000001_create_watchlist_entries.down.sql")

	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

func TestMigrationSource(t *testing.T) {
	assert.Equal(t, "embedded", migrationSource(""))
	assert.Equal(t, "/srv/migrations", migrationSource("/srv/migrations"))
}
