package loader

import (
	"context"
	"fmt"
	"time"

	"feature-catalog/core/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tune a loader run.
type Options struct {
	// Concurrency bounds the number of modules loading at once. Zero means unbounded.
	Concurrency int
	// InitTimeout bounds each Init call. Zero means no timeout.
	InitTimeout time.Duration
}

// Loader loads and initialises the modules of a catalogue.
type Loader struct {
	table  *Table
	logger *zap.Logger
	opts   Options
}

// New creates a loader over a module table.
func New(table *Table, logger *zap.Logger, opts Options) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{table: table, logger: logger, opts: opts}
}

// Run loads every descriptor's module concurrently and waits for all of them.
// It never fails as a whole: per-module failures are logged and recorded in the report.
func (l *Loader) Run(ctx context.Context, descriptors []catalog.Descriptor) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Total:     len(descriptors),
		Results:   make([]Result, len(descriptors)),
	}

	// Tasks never return an error, so a failure cannot cancel its siblings.
	g := new(errgroup.Group)
	if l.opts.Concurrency > 0 {
		g.SetLimit(l.opts.Concurrency)
	}

	for i, d := range descriptors {
		g.Go(func() error {
			report.Results[i] = l.load(ctx, d)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range report.Results {
		if res.Succeeded() {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	report.FinishedAt = time.Now()

	l.logger.Info("Feature initialization complete",
		zap.String("run_id", report.RunID),
		zap.Int("total", report.Total),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration()),
	)

	return report
}

func (l *Loader) load(ctx context.Context, d catalog.Descriptor) (res Result) {
	start := time.Now()
	res = Result{ID: d.ID, File: d.File, Category: d.Metadata.Category}
	stage := StageLookup

	defer func() {
		if r := recover(); r != nil {
			res = failed(res, stage, fmt.Errorf("panic: %v", r))
		}
		res.Duration = time.Since(start)

		if res.Status == StatusFailed {
			l.logger.Warn("Failed to initialize feature",
				zap.String("id", d.ID),
				zap.String("file", d.File),
				zap.String("stage", string(res.Stage)),
				zap.Error(res.Err),
			)
			return
		}
		l.logger.Debug("Feature ready", zap.String("id", d.ID), zap.String("status", string(res.Status)))
	}()

	if err := ctx.Err(); err != nil {
		return failed(res, stage, err)
	}

	factory, ok := l.table.Lookup(d.ID)
	if !ok {
		return failed(res, StageLookup, ErrModuleNotFound)
	}

	stage = StageLoad
	mod, err := factory()
	if err != nil {
		return failed(res, stage, err)
	}
	if mod == nil {
		return failed(res, stage, ErrNilModule)
	}

	hook, ok := mod.(Initializer)
	if !ok {
		res.Status = StatusLoaded
		return res
	}

	stage = StageInit
	initCtx := ctx
	if l.opts.InitTimeout > 0 {
		var cancel context.CancelFunc
		initCtx, cancel = context.WithTimeout(ctx, l.opts.InitTimeout)
		defer cancel()
	}
	if err := hook.Init(initCtx); err != nil {
		return failed(res, stage, err)
	}

	res.Status = StatusInitialized
	return res
}

func failed(res Result, stage Stage, err error) Result {
	res.Status = StatusFailed
	res.Stage = stage
	res.Err = err
	res.Error = err.Error()
	return res
}
