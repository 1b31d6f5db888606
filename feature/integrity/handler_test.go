package integrity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"furnishing-helper/core/database/dbtest"
	"furnishing-helper/core/storage"
	"furnishing-helper/core/storage/mocks"
	accountmodels "furnishing-helper/feature/account/models"
	inventorymodels "furnishing-helper/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const object = "gamedata/Catalog.json"

var cfg = storage.Config{Bucket: "furnishings", CatalogObject: object}

func listing(keys ...string) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(keys))
		for _, k := range keys {
			ch <- minio.ObjectInfo{Key: k}
		}
		close(ch)
		return ch
	}
}

func newTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()

	models := []any{&inventorymodels.Inventory{}, &accountmodels.Account{}}
	db := dbtest.NewSQLite(t, models...)
	svc := NewService(client, cfg, db, models, zap.NewNop())

	app := fiber.New()
	feature := NewFeature(svc)
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandler_AllHealthy(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "furnishings").Return(true, nil)
	client.On("ListObjects", mock.Anything, "furnishings", mock.Anything).Return(listing(object))
	client.On("GetObject", mock.Anything, "furnishings", object, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"characters":["Amber"],"gift_sets":[]}`))), nil)

	app := newTestApp(t, client)

	status, body := getJSON(t, app, "/integrity")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["healthy"])
	assert.Equal(t, "ok", body["bucket"].(map[string]any)["status"])
	assert.Equal(t, "ok", body["catalog"].(map[string]any)["status"])
	assert.Equal(t, "ok", body["server"].(map[string]any)["status"])
}

func TestHandler_AllRecordsFailures(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "furnishings").Return(false, errors.New("unreachable"))
	client.On("ListObjects", mock.Anything, "furnishings", mock.Anything).Return(listing())

	app := newTestApp(t, client)

	status, body := getJSON(t, app, "/integrity")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["healthy"])
	assert.Equal(t, "error", body["bucket"].(map[string]any)["status"])
	assert.Equal(t, "failed", body["catalog"].(map[string]any)["status"])
	assert.Equal(t, "ok", body["server"].(map[string]any)["status"])
}

func TestHandler_BucketFix(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "furnishings").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "furnishings", mock.Anything).Return(nil)

	app := newTestApp(t, client)

	status, body := getJSON(t, app, "/integrity/bucket")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["exists"])
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, "furnishings", mock.Anything)

	status, body = getJSON(t, app, "/integrity/bucket?fix=true")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["fixed"])
	client.AssertCalled(t, "MakeBucket", mock.Anything, "furnishings", mock.Anything)
}

func TestHandler_CatalogError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "furnishings", mock.Anything).Return(listing(object))
	client.On("GetObject", mock.Anything, "furnishings", object, mock.Anything).
		Return(nil, errors.New("denied"))

	app := newTestApp(t, client)

	status, body := getJSON(t, app, "/integrity/catalog")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "denied")
}

func TestHandler_Server(t *testing.T) {
	app := newTestApp(t, new(mocks.Client))

	status, body := getJSON(t, app, "/integrity/server")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "sqlite", body["driver"])
}
