package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moodbite.db")

	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	assert.NoError(t, st.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, st.verifyPragma("foreign_keys", "1"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moodbite.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()
}

func TestOpen_SchemaVersion(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	var version int
	require.NoError(t, st.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moodbite.db")

	st, err := Open(path)
	require.NoError(t, err)
	_, err = st.DB().Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version 99 is newer")
}

func TestClose_NilSafe(t *testing.T) {
	var st Store
	assert.NoError(t, st.Close())
}
