package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"furnishing-helper/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	svc := NewService(newSeededStore(t), newDocumentClient(documentJSON), storageCfg, nil, zap.NewNop())
	app := fiber.New()
	feature := NewFeature(svc)
	assert.Equal(t, "catalog", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	t.Run("GetCatalog", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var cat models.Catalog
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&cat))
		assert.Equal(t, []string{"Amber", "Kaeya", "Lisa"}, cat.Characters)
		assert.Len(t, cat.GiftSets, 2)
	})

	t.Run("GetPlan", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog/plan?purge=true", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report SyncReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, 0, report.Executed)
		assert.Equal(t, 1, report.Plan.Summary.PurgeActions)
	})
}
