package loader

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrModuleNotFound is reported for descriptors with no registered module.
	ErrModuleNotFound = errors.New("module not found")
	// ErrNilModule is reported when a factory returns neither a module nor an error.
	ErrNilModule = errors.New("factory returned nil module")
)

// Module is a loaded catalogue module.
type Module interface {
	Name() string
}

// Initializer is implemented by modules with start-up work.
type Initializer interface {
	Init(ctx context.Context) error
}

// Factory loads a module.
type Factory func() (Module, error)

// Table maps descriptor ids to module factories.
type Table struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{factories: make(map[string]Factory)}
}

// Register adds a factory under id.
func (t *Table) Register(id string, f Factory) error {
	if id == "" {
		return errors.New("module id cannot be empty")
	}
	if f == nil {
		return fmt.Errorf("module %s: nil factory", id)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.factories[id]; exists {
		return fmt.Errorf("module %s is already registered", id)
	}
	t.factories[id] = f
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (t *Table) MustRegister(id string, f Factory) {
	if err := t.Register(id, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under id.
func (t *Table) Lookup(id string) (Factory, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.factories[id]
	return f, ok
}

// IDs returns all registered ids, sorted.
func (t *Table) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.factories))
	for id := range t.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered modules.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.factories)
}
