package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"feature-catalog/core/loader"
	"feature-catalog/feature/bootstrap/models"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when no run matches the requested id.
var ErrRunNotFound = errors.New("run not found")

// HistoryStore persists loader runs.
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore creates a store over an open database.
func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Migrate creates or updates the history tables.
func (s *HistoryStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.Run{}, &models.RunResult{}); err != nil {
		return fmt.Errorf("failed to migrate run history: %w", err)
	}
	return nil
}

// Save stores a report with all of its results.
func (s *HistoryStore) Save(ctx context.Context, report *loader.Report) error {
	run := models.FromReport(report)
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to save run %s: %w", report.RunID, err)
	}
	return nil
}

// List returns the most recent runs without their results, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]models.Run, error) {
	var runs []models.Run
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get loads one run with its results.
func (s *HistoryStore) Get(ctx context.Context, runID string) (*loader.Report, error) {
	var run models.Run
	err := s.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("run_id = ?", runID).
		First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", runID, err)
	}
	return run.ToReport(), nil
}
