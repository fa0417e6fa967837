package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_runs (id INTEGER PRIMARY KEY, run_id TEXT NOT NULL, total INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_runs")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["run_id"].Type)
	assert.Equal(t, "NO", colMap["run_id"].Null)
	assert.Equal(t, "YES", colMap["total"].Null)

	// PRAGMA table_info returns no rows for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE test_results (id INTEGER PRIMARY KEY, status TEXT)").Error)

	missing, err := MissingColumns(db, "test_results", []string{"id", "Status", "stage", "error"})
	require.NoError(t, err)
	assert.Equal(t, []string{"stage", "error"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
