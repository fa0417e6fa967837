package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"feature-catalog/core/catalog"
	"feature-catalog/core/loader"
	"feature-catalog/core/storage"
	"feature-catalog/feature/bootstrap/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrHistoryDisabled is returned when run history is requested without a database.
var ErrHistoryDisabled = errors.New("run history is disabled")

// ReportPrefix is the bucket prefix of archived reports.
const ReportPrefix = "reports/"

// Service runs the loader over the catalogue and keeps its reports.
type Service struct {
	registry *catalog.Registry
	loader   *loader.Loader
	history  *HistoryStore
	client   storage.Client
	bucket   string
	logger   *zap.Logger

	group singleflight.Group
	mu    sync.RWMutex
	last  *loader.Report
}

// NewService creates a bootstrap service.
// history and client may be nil to disable persistence and archiving.
func NewService(registry *catalog.Registry, ldr *loader.Loader, history *HistoryStore, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		loader:   ldr,
		history:  history,
		client:   client,
		bucket:   bucket,
		logger:   logger,
	}
}

// Run loads the modules of every descriptor matching f.
// Concurrent calls with the same filter share a single run.
// The shared run ignores cancellation of the caller that started it,
// so one departing caller cannot fail the report of the others.
func (s *Service) Run(ctx context.Context, f catalog.Filter) *loader.Report {
	key := fmt.Sprintf("%s|%s|%s|%s|%s", f.Category, f.Priority, f.Platform, f.UserType, f.Query)

	v, _, _ := s.group.Do(key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		report := s.loader.Run(ctx, s.registry.Filter(f))

		s.mu.Lock()
		s.last = report
		s.mu.Unlock()

		s.persist(ctx, report)
		return report, nil
	})
	return v.(*loader.Report)
}

// persist saves and archives a report. Failures are logged only.
func (s *Service) persist(ctx context.Context, report *loader.Report) {
	if s.history != nil {
		if err := s.history.Save(ctx, report); err != nil {
			s.logger.Warn("Failed to save run history", zap.String("run_id", report.RunID), zap.Error(err))
		}
	}
	if s.client != nil {
		key := ReportPrefix + report.RunID + ".json"
		if err := storage.PutJSON(ctx, s.client, s.bucket, key, report); err != nil {
			s.logger.Warn("Failed to archive report", zap.String("run_id", report.RunID), zap.Error(err))
		}
	}
}

// Last returns the most recent report of this process.
func (s *Service) Last() (*loader.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}

// Runs lists persisted runs, newest first.
func (s *Service) Runs(ctx context.Context, limit int) ([]models.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}

// Report finds a run by id in memory, then the history, then the archive.
func (s *Service) Report(ctx context.Context, runID string) (*loader.Report, error) {
	if last, ok := s.Last(); ok && last.RunID == runID {
		return last, nil
	}

	if s.history != nil {
		report, err := s.history.Get(ctx, runID)
		if err == nil {
			return report, nil
		}
		if !errors.Is(err, ErrRunNotFound) {
			return nil, err
		}
	}

	if s.client != nil {
		var report loader.Report
		if err := storage.GetJSON(ctx, s.client, s.bucket, ReportPrefix+runID+".json", &report); err == nil {
			return &report, nil
		}
	}

	return nil, ErrRunNotFound
}
