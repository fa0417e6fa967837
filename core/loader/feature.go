package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is an HTTP feature mounted on the application router.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Manager holds the registered HTTP features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature. Features load in registration order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Names returns the names of all registered features.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.features))
	for _, f := range m.features {
		names = append(names, f.Name())
	}
	return names
}

// LoadAll loads every enabled feature and stops at the first error.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}
