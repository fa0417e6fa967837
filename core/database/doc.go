// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a SQLite file based on the
// application's configuration. The connection is optional: when it fails, the service
// keeps running without run history.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (SHOW COLUMNS on MySQL, PRAGMA table_info on
// SQLite). The integrity server check uses it to verify the run history tables.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "bootstrap_runs")
package database
