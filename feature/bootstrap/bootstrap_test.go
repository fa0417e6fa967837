package bootstrap

import (
	"context"
	"errors"
	"testing"

	"feature-catalog/core/catalog"
	"feature-catalog/core/database"
	"feature-catalog/core/loader"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCatalogue = `
categories:
  - name: editing
    features:
      - {id: US-0101, file: feature/modules/editing.go, metadata: {title: Multi-cursor, priority: high}}
      - {id: US-0102, file: feature/modules/editing.go, metadata: {title: Rename, priority: critical}}
  - name: quality
    features:
      - {id: US-0601, file: feature/modules/quality.go, metadata: {title: Lint, priority: high}}
`

type testModule struct {
	id  string
	err error
}

func (m testModule) Name() string                   { return m.id }
func (m testModule) Init(ctx context.Context) error { return m.err }

// newTestRegistry returns the test catalogue and a table where US-0102 fails to initialise.
func newTestRegistry(t *testing.T) (*catalog.Registry, *loader.Table) {
	t.Helper()
	reg, err := catalog.Parse([]byte(testCatalogue))
	require.NoError(t, err)

	table := loader.NewTable()
	table.MustRegister("US-0101", func() (loader.Module, error) { return testModule{id: "US-0101"}, nil })
	table.MustRegister("US-0102", func() (loader.Module, error) {
		return testModule{id: "US-0102", err: errors.New("index unavailable")}, nil
	})
	table.MustRegister("US-0601", func() (loader.Module, error) { return testModule{id: "US-0601"}, nil })
	return reg, table
}

func newTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := NewHistoryStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func newTestLoader(table *loader.Table) *loader.Loader {
	return loader.New(table, zap.NewNop(), loader.Options{})
}
