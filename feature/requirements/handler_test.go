package requirements

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"furnishing-helper/core/database/dbtest"
	"furnishing-helper/core/middleware/auth"
	"furnishing-helper/core/storage"
	"furnishing-helper/feature/catalog"
	"furnishing-helper/feature/catalog/catalogtest"
	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/inventory"
	"furnishing-helper/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *inventory.Service) {
	t.Helper()

	db := dbtest.NewSQLite(t, append(catalogmodels.Tables(), &models.Inventory{})...)
	catalogtest.Seed(t, db, catalogtest.Sample())

	catalogSvc := catalog.NewService(catalog.NewStore(db), nil, storage.Config{}, nil, zap.NewNop())
	inventorySvc := inventory.NewService(inventory.NewStore(db), catalogSvc, zap.NewNop())
	svc := NewService(inventorySvc, catalogSvc, zap.NewNop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.LocalsKey, "user-1")
		return c.Next()
	})
	require.NoError(t, NewFeature(svc).Load(app))
	return app, inventorySvc
}

func post(t *testing.T, app *fiber.App, body []byte) Result {
	t.Helper()

	req := httptest.NewRequest("POST", "/requirements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHandleCompute_StoredInventory(t *testing.T) {
	app, _ := newTestApp(t)

	// A fresh inventory owns no characters.
	res := post(t, app, nil)
	assert.True(t, res.NothingToClaim)
}

func TestHandleCompute_SavedEdits(t *testing.T) {
	app, inventorySvc := newTestApp(t)
	ctx := t.Context()

	_, err := inventorySvc.Tables(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, inventorySvc.SaveCharacters(ctx, "user-1", []models.CharacterRow{{Name: "Amber", Owned: true}, {Name: "Lisa", Owned: true}}, 0))
	require.NoError(t, inventorySvc.SaveQuantities(ctx, "user-1", models.CategoryFurnishings, []models.QuantityRow{{Name: "Lamp", Quantity: 1}, {Name: "Bench", Quantity: 2}}, 0))
	require.NoError(t, inventorySvc.SaveQuantities(ctx, "user-1", models.CategoryMaterials, []models.QuantityRow{{Name: "Wood", Quantity: 1}}, 0))

	res := post(t, app, nil)

	assert.False(t, res.NothingToClaim)
	assert.Equal(t, []string{"Garden Set", "Lamp Set"}, res.EligibleSets)
	assert.Equal(t, []FurnishingNeed{{Name: "Lamp", Amount: 2}}, res.Craft)
	assert.Equal(t, []FurnishingNeed{{Name: "Bench", Amount: 3}}, res.Buy)
	assert.Equal(t, []MaterialNeed{{Name: "Wood", Needed: 4, Owned: 1, Shortfall: 3}}, res.Materials)
}

func TestHandleCompute_UnsavedEdits(t *testing.T) {
	app, _ := newTestApp(t)

	edited := models.Tables{
		Characters:  []models.CharacterRow{{Name: "Kaeya", Owned: true}},
		Sets:        []models.SetRow{{Name: "Lamp Set", Character: "Kaeya", Claimed: false}},
		Furnishings: []models.QuantityRow{{Name: "Lamp", Quantity: 3}},
	}
	body, err := json.Marshal(edited)
	require.NoError(t, err)

	res := post(t, app, body)

	assert.False(t, res.NothingToClaim)
	assert.Empty(t, res.Craft)
	assert.Empty(t, res.Materials)

	req := httptest.NewRequest("POST", "/requirements", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCompute_UnsavedEditsUngrantedPair(t *testing.T) {
	app, _ := newTestApp(t)

	// Lamp Set is granted by Amber and Kaeya only.
	edited := models.Tables{
		Characters: []models.CharacterRow{{Name: "Lisa", Owned: true}},
		Sets:       []models.SetRow{{Name: "Lamp Set", Character: "Lisa", Claimed: false}},
	}
	body, err := json.Marshal(edited)
	require.NoError(t, err)

	res := post(t, app, body)

	assert.True(t, res.NothingToClaim)
	assert.Empty(t, res.EligibleSets)
	assert.Empty(t, res.Craft)
}
