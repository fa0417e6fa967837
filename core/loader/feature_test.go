package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"feature-catalog/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *routeFeature) Name() string    { return f.name }
func (f *routeFeature) IsEnabled() bool { return f.enabled }
func (f *routeFeature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	f.loaded = true
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &routeFeature{name: "catalog", enabled: true}
		off := &routeFeature{name: "integrity", enabled: false}

		mgr := loader.NewManager()
		mgr.Register(on)
		mgr.Register(off)
		assert.Equal(t, []string{"catalog", "integrity"}, mgr.Names())

		app := fiber.New()
		require.NoError(t, mgr.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)

		resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("WrapsError", func(t *testing.T) {
		cause := errors.New("bad routes")
		mgr := loader.NewManager()
		mgr.Register(&routeFeature{name: "bootstrap", enabled: true, err: cause})

		err := mgr.LoadAll(fiber.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "bootstrap")
	})
}
