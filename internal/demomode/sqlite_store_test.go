package demomode

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	_, found, err := store.Load(Key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	require.NoError(t, store.Save(Key, "true"))

	value, found, err := store.Load(Key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}

func TestSQLiteStore_SaveUpserts(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	require.NoError(t, store.Save(Key, "true"))
	require.NoError(t, store.Save(Key, "false"))

	value, found, err := store.Load(Key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", value)
}
