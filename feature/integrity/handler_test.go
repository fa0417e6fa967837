package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"feature-catalog/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	expectHistoryColumns(sqlMock)

	reg, table := testCatalog(t)
	svc := NewService(reg, table, mockClient, "test-bucket", "", zap.NewNop(), db)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func decode(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleCatalogCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := decode(t, app, "GET", "/integrity/catalog")
	assert.Equal(t, 200, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, []any{"US-0102"}, body["unregistered"])
}

func TestHandleStorageCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.EmptyListing())

	status, body := decode(t, app, "GET", "/integrity/storage")
	assert.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.EmptyListing())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	status, body := decode(t, app, "GET", "/integrity/storage?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
}

func TestHandleStorageCheck_BucketMissing(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	status, body := decode(t, app, "GET", "/integrity/storage")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "bucket does not exist")
}

func TestHandleServerCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := decode(t, app, "GET", "/integrity/server")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing("catalog/"))

	status, body := decode(t, app, "GET", "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "catalog")
	assert.Contains(t, body, "storage")
	assert.Contains(t, body, "server")
}

func TestHandleIntegrityCheck_Disabled(t *testing.T) {
	reg, table := testCatalog(t)
	app := fiber.New()
	NewHandler(NewService(reg, table, nil, "", "", zap.NewNop(), nil)).RegisterRoutes(app)

	status, body := decode(t, app, "GET", "/integrity")
	assert.Equal(t, 200, status)
	assert.Equal(t, "skipped", body["storage"].(map[string]any)["status"])
	assert.Equal(t, "skipped", body["server"].(map[string]any)["status"])

	status, _ = decode(t, app, "GET", "/integrity/storage")
	assert.Equal(t, 503, status)
	status, _ = decode(t, app, "GET", "/integrity/server")
	assert.Equal(t, 503, status)
}
