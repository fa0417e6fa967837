package checks

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, name := range names {
		rows.AddRow(name, "varchar(255)", "YES", "", nil, "")
	}
	return rows
}

var testExpected = map[string][]string{
	"bootstrap_results": {"id", "run_ref", "status"},
	"bootstrap_runs":    {"id", "run_id", "total"},
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil, testExpected)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_Matched(t *testing.T) {
	db, mock := setupMockDB(t)

	// Tables are inspected in name order.
	mock.ExpectQuery("SHOW COLUMNS FROM `bootstrap_results`").WillReturnRows(columnRows("id", "run_ref", "status", "extra"))
	mock.ExpectQuery("SHOW COLUMNS FROM `bootstrap_runs`").WillReturnRows(columnRows("ID", "run_id", "total"))

	report, err := CheckServerIntegrity(db, testExpected)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "ok", report.Tables["bootstrap_runs"].Status)
	assert.Empty(t, report.Tables["bootstrap_results"].MissingColumns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckServerIntegrity_MissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `bootstrap_results`").WillReturnRows(columnRows("id"))
	mock.ExpectQuery("SHOW COLUMNS FROM `bootstrap_runs`").WillReturnRows(columnRows("id", "run_id", "total"))

	report, err := CheckServerIntegrity(db, testExpected)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["bootstrap_results"]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"run_ref", "status"}, tbl.MissingColumns)
	assert.Equal(t, "ok", report.Tables["bootstrap_runs"].Status)
}

func TestCheckServerIntegrity_InspectError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `bootstrap_results`").WillReturnError(errors.New("table doesn't exist"))
	mock.ExpectQuery("SHOW COLUMNS FROM `bootstrap_runs`").WillReturnRows(columnRows("id", "run_id", "total"))

	report, err := CheckServerIntegrity(db, testExpected)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "bootstrap_results")
	_, inspected := report.Tables["bootstrap_results"]
	assert.False(t, inspected)
}
