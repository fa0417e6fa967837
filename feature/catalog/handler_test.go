package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	catalogcore "feature-catalog/core/catalog"
	"feature-catalog/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()
	reg, err := catalogcore.Default()
	require.NoError(t, err)

	var f *Feature
	if client != nil {
		f = NewFeature(reg, client, "test-bucket", zap.NewNop())
	} else {
		f = NewFeature(reg, nil, "", zap.NewNop())
	}

	app := fiber.New()
	require.NoError(t, f.Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, target string, v any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	if v != nil && resp.StatusCode == 200 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestHandleCatalog(t *testing.T) {
	app := setupTestApp(t, nil)

	var groups []catalogcore.Category
	assert.Equal(t, 200, get(t, app, "/catalog", &groups))
	require.Len(t, groups, 7)
	assert.Equal(t, "ai-generation", groups[0].Name)
	assert.Equal(t, "US-0001", groups[0].Features[0].ID)

	var names []string
	assert.Equal(t, 200, get(t, app, "/catalog/categories", &names))
	assert.Contains(t, names, "editing")
}

func TestHandleCategory(t *testing.T) {
	app := setupTestApp(t, nil)

	var features []catalogcore.Descriptor
	assert.Equal(t, 200, get(t, app, "/catalog/categories/quality", &features))
	assert.Len(t, features, 5)
	for _, d := range features {
		assert.Equal(t, "quality", d.Metadata.Category)
	}

	assert.Equal(t, 404, get(t, app, "/catalog/categories/unknown", nil))
}

func TestHandleFeature(t *testing.T) {
	app := setupTestApp(t, nil)

	var d catalogcore.Descriptor
	assert.Equal(t, 200, get(t, app, "/catalog/features/us-0101", &d))
	assert.Equal(t, "US-0101", d.ID)
	assert.NotEmpty(t, d.Metadata.Title)

	assert.Equal(t, 404, get(t, app, "/catalog/features/US-9999", nil))
}

func TestHandleSearch(t *testing.T) {
	app := setupTestApp(t, nil)

	var features []catalogcore.Descriptor
	assert.Equal(t, 200, get(t, app, "/catalog/search?priority=critical", &features))
	assert.NotEmpty(t, features)
	for _, d := range features {
		assert.Equal(t, "critical", d.Metadata.Priority)
	}

	features = nil
	assert.Equal(t, 200, get(t, app, "/catalog/search?q=no-such-text-anywhere", &features))
	assert.NotNil(t, features)
	assert.Empty(t, features)
}

func TestHandleStats(t *testing.T) {
	app := setupTestApp(t, nil)

	var stats catalogcore.Stats
	assert.Equal(t, 200, get(t, app, "/catalog/stats", &stats))
	assert.Equal(t, 35, stats.Total)
	assert.Equal(t, 5, stats.ByCategory["navigation"])
}

func TestHandleExport(t *testing.T) {
	t.Run("StorageDisabled", func(t *testing.T) {
		app := setupTestApp(t, nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/catalog/export", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("Uploads", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "test-bucket", ExportJSONKey, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Once()
		mockClient.On("PutObject", mock.Anything, "test-bucket", ExportYAMLKey, mock.Anything, mock.Anything,
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/yaml" })).
			Return(minio.UploadInfo{}, nil).Once()
		app := setupTestApp(t, mockClient)

		resp, err := app.Test(httptest.NewRequest("POST", "/catalog/export", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result ExportResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "test-bucket", result.Bucket)
		assert.Equal(t, 35, result.Features)
		assert.Equal(t, []string{ExportJSONKey, ExportYAMLKey}, result.Objects)
		mockClient.AssertExpectations(t)
	})

	t.Run("UploadFails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "test-bucket", ExportJSONKey, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)
		app := setupTestApp(t, mockClient)

		resp, err := app.Test(httptest.NewRequest("POST", "/catalog/export", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}
