package checks

import (
	"fmt"
	"sort"

	"feature-catalog/core/database"

	"gorm.io/gorm"
)

// ServerReport strictly types the result of a server integrity check.
type ServerReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckServerIntegrity verifies that every table has its expected columns.
func CheckServerIntegrity(db *gorm.DB, expected map[string][]string) (*ServerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &ServerReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	tables := make([]string, 0, len(expected))
	for table := range expected {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, expected[table])
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tblReport := TableReport{MissingColumns: []string{}, Status: "ok"}
		if len(missing) > 0 {
			tblReport.MissingColumns = missing
			tblReport.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tblReport
	}

	return report, nil
}
