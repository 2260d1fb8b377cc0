package database_test

import (
	"testing"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesTuning(t *testing.T) {
	// shared cache so the pool's connections all see one in-memory db
	db, err := database.New(&config.Config{DBPath: "file::memory:?cache=shared"}, zerolog.Nop())
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	var busyTimeout int64
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout))
	assert.Equal(t, constants.DBBusyTimeout.Milliseconds(), busyTimeout)

	var foreignKeys int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)

	// migrations ran: the lookups table is queryable
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM lookups").Scan(&count))
	assert.Zero(t, count)
}
