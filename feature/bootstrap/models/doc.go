// Package models defines the GORM models of the loader run history.
//
// Tables:
//   - bootstrap_runs: one row per loader run (counts and timings).
//   - bootstrap_results: one row per module outcome, ordered by position.
package models
