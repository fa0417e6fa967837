package models

import (
	"errors"
	"time"

	"feature-catalog/core/loader"
)

// Run is one persisted loader run.
type Run struct {
	ID         uint        `gorm:"column:id;primaryKey" json:"-"`
	RunID      string      `gorm:"column:run_id;size:36;uniqueIndex" json:"run_id"`
	StartedAt  time.Time   `gorm:"column:started_at;index" json:"started_at"`
	FinishedAt time.Time   `gorm:"column:finished_at" json:"finished_at"`
	Total      int         `gorm:"column:total" json:"total"`
	Succeeded  int         `gorm:"column:succeeded" json:"succeeded"`
	Failed     int         `gorm:"column:failed" json:"failed"`
	Results    []RunResult `gorm:"foreignKey:RunRef;references:ID" json:"results,omitempty"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "bootstrap_runs"
}

// RunResult is the persisted outcome of one module in a run.
type RunResult struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"-"`
	RunRef     uint   `gorm:"column:run_ref;index" json:"-"`
	Position   int    `gorm:"column:position" json:"position"`
	FeatureID  string `gorm:"column:feature_id;size:32" json:"feature_id"`
	File       string `gorm:"column:file" json:"file"`
	Category   string `gorm:"column:category;size:64" json:"category"`
	Status     string `gorm:"column:status;size:16" json:"status"`
	Stage      string `gorm:"column:stage;size:16" json:"stage"`
	Error      string `gorm:"column:error;type:text" json:"error"`
	DurationNS int64  `gorm:"column:duration_ns" json:"duration_ns"`
}

// TableName overrides the table name.
func (RunResult) TableName() string {
	return "bootstrap_results"
}

// ExpectedColumns lists the columns each history table must have.
var ExpectedColumns = map[string][]string{
	"bootstrap_runs":    {"id", "run_id", "started_at", "finished_at", "total", "succeeded", "failed"},
	"bootstrap_results": {"id", "run_ref", "position", "feature_id", "file", "category", "status", "stage", "error", "duration_ns"},
}

// FromReport converts a loader report into a persistable run.
func FromReport(r *loader.Report) Run {
	run := Run{
		RunID:      r.RunID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Total:      r.Total,
		Succeeded:  r.Succeeded,
		Failed:     r.Failed,
		Results:    make([]RunResult, 0, len(r.Results)),
	}
	for i, res := range r.Results {
		run.Results = append(run.Results, RunResult{
			Position:   i,
			FeatureID:  res.ID,
			File:       res.File,
			Category:   res.Category,
			Status:     string(res.Status),
			Stage:      string(res.Stage),
			Error:      res.Error,
			DurationNS: int64(res.Duration),
		})
	}
	return run
}

// ToReport converts a run, with its results loaded, back into a loader report.
func (r Run) ToReport() *loader.Report {
	report := &loader.Report{
		RunID:      r.RunID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Total:      r.Total,
		Succeeded:  r.Succeeded,
		Failed:     r.Failed,
		Results:    make([]loader.Result, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		out := loader.Result{
			ID:       res.FeatureID,
			File:     res.File,
			Category: res.Category,
			Status:   loader.Status(res.Status),
			Stage:    loader.Stage(res.Stage),
			Error:    res.Error,
			Duration: time.Duration(res.DurationNS),
		}
		if res.Error != "" {
			out.Err = errors.New(res.Error)
		}
		report.Results = append(report.Results, out)
	}
	return report
}
