package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"runtime"
	"sync"
	"testing"

	"feature-catalog/core/catalog"
	"feature-catalog/core/loader"
	"feature-catalog/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestService_Run(t *testing.T) {
	reg, table := newTestRegistry(t)
	svc := NewService(reg, newTestLoader(table), nil, nil, "", zap.NewNop())

	_, ok := svc.Last()
	assert.False(t, ok)

	report := svc.Run(context.Background(), catalog.Filter{})
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "US-0102", report.FailedResults()[0].ID)

	last, ok := svc.Last()
	require.True(t, ok)
	assert.Equal(t, report.RunID, last.RunID)

	filtered := svc.Run(context.Background(), catalog.Filter{Category: "quality"})
	assert.Equal(t, 1, filtered.Total)
	assert.True(t, filtered.OK())
}

func TestService_Run_IgnoresCallerCancellation(t *testing.T) {
	reg, table := newTestRegistry(t)
	svc := NewService(reg, newTestLoader(table), nil, nil, "", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := svc.Run(ctx, catalog.Filter{Category: "quality"})
	assert.Equal(t, 1, report.Total)
	assert.True(t, report.OK())
	assert.Equal(t, loader.StatusInitialized, report.Results[0].Status)
}

func TestService_ConcurrentRunsShareResult(t *testing.T) {
	reg, _ := newTestRegistry(t)

	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	table := loader.NewTable()
	for _, d := range reg.Flatten() {
		table.MustRegister(d.ID, func() (loader.Module, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			<-release
			return testModule{id: d.ID}, nil
		})
	}
	svc := NewService(reg, newTestLoader(table), nil, nil, "", zap.NewNop())

	var wg sync.WaitGroup
	reports := make([]*loader.Report, 4)
	for i := range reports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i] = svc.Run(context.Background(), catalog.Filter{})
		}()
	}

	// Let the callers join the in-flight run before releasing it.
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n >= reg.Len() {
			break
		}
		runtime.Gosched()
	}
	close(release)
	wg.Wait()

	for _, r := range reports {
		require.NotNil(t, r)
	}
	assert.LessOrEqual(t, calls, reg.Len()*len(reports))
	assert.Equal(t, reg.Len(), reports[0].Total)
}

func TestService_PersistsAndArchives(t *testing.T) {
	reg, table := newTestRegistry(t)
	history := newTestHistory(t)
	mockClient := new(mocks.Client)

	var archived []byte
	mockClient.On("PutObject", mock.Anything, "catalog-bucket", mock.MatchedBy(func(key string) bool {
		return len(key) > len(ReportPrefix) && key[:len(ReportPrefix)] == ReportPrefix
	}), mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			archived, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(reg, newTestLoader(table), history, mockClient, "catalog-bucket", zap.NewNop())
	report := svc.Run(context.Background(), catalog.Filter{})

	runs, err := svc.Runs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, report.RunID, runs[0].RunID)

	var decoded loader.Report
	require.NoError(t, json.Unmarshal(archived, &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	assert.Equal(t, 3, decoded.Total)
	mockClient.AssertExpectations(t)
}

func TestService_PersistFailuresAreLogged(t *testing.T) {
	reg, table := newTestRegistry(t)
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewService(reg, newTestLoader(table), nil, mockClient, "bucket", zap.New(core))

	report := svc.Run(context.Background(), catalog.Filter{})
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, logs.FilterMessage("Failed to archive report").Len())
}

func TestService_Runs_HistoryDisabled(t *testing.T) {
	reg, table := newTestRegistry(t)
	svc := NewService(reg, newTestLoader(table), nil, nil, "", zap.NewNop())

	_, err := svc.Runs(context.Background(), 10)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestService_Report(t *testing.T) {
	ctx := context.Background()
	reg, table := newTestRegistry(t)

	t.Run("InMemory", func(t *testing.T) {
		svc := NewService(reg, newTestLoader(table), nil, nil, "", zap.NewNop())
		report := svc.Run(ctx, catalog.Filter{})

		got, err := svc.Report(ctx, report.RunID)
		require.NoError(t, err)
		assert.Same(t, report, got)
	})

	t.Run("History", func(t *testing.T) {
		history := newTestHistory(t)
		old := newTestLoader(table).Run(ctx, reg.Flatten())
		require.NoError(t, history.Save(ctx, old))

		svc := NewService(reg, newTestLoader(table), history, nil, "", zap.NewNop())
		got, err := svc.Report(ctx, old.RunID)
		require.NoError(t, err)
		assert.Equal(t, old.Total, got.Total)
	})

	t.Run("Archive", func(t *testing.T) {
		archived := `{"run_id":"archived-run","total":3,"succeeded":3,"failed":0,"results":[]}`
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "reports/archived-run.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(archived))), nil)

		svc := NewService(reg, newTestLoader(table), nil, mockClient, "bucket", zap.NewNop())
		got, err := svc.Report(ctx, "archived-run")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Succeeded)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "reports/nope.json", mock.Anything).
			Return(nil, assert.AnError)

		svc := NewService(reg, newTestLoader(table), newTestHistory(t), mockClient, "bucket", zap.NewNop())
		_, err := svc.Report(ctx, "nope")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})
}
