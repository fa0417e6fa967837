package auth_test

import (
	"net/http/httptest"
	"testing"

	"feature-catalog/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/catalog", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error { return c.SendString("docs") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header string
		value  string
		want   int
	}{
		{"Disabled", auth.Config{}, "/catalog", "", "", 200},
		{"MissingKey", auth.Config{ApiKey: "secret"}, "/catalog", "", "", 401},
		{"WrongKey", auth.Config{ApiKey: "secret"}, "/catalog", auth.Header, "nope", 401},
		{"HeaderKey", auth.Config{ApiKey: "secret"}, "/catalog", auth.Header, "secret", 200},
		{"BearerKey", auth.Config{ApiKey: "secret"}, "/catalog", "Authorization", "Bearer secret", 200},
		{"SkippedPath", auth.Config{ApiKey: "secret", Skip: []string{"/swagger"}}, "/swagger/index.html", "", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := setupApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
