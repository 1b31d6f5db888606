package inventory

import (
	"context"
	"testing"

	"furnishing-helper/core/database/dbtest"
	"furnishing-helper/feature/catalog/catalogtest"
	"furnishing-helper/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(dbtest.NewSQLite(t, &models.Inventory{}))
}

func TestStore_FindOrCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	cat := catalogtest.Sample()

	_, err := store.Find(ctx, "user-1")
	assert.ErrorIs(t, err, ErrInventoryNotFound)

	inv, err := store.FindOrCreate(ctx, "user-1", cat)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inv.Version)
	assert.Equal(t, map[string]bool{"Amber": false, "Kaeya": false, "Lisa": false}, inv.Characters.Data())
	assert.Equal(t, map[string]int{"Wood": 0, "Fabric": 0}, inv.Materials.Data())
	assert.Len(t, inv.Sets.Data(), 2)

	again, err := store.FindOrCreate(ctx, "user-1", cat)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, again.ID)
}

func TestStore_Persist(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.FindOrCreate(ctx, "user-1", catalogtest.Sample())
	require.NoError(t, err)

	t.Run("UnknownUser", func(t *testing.T) {
		ok, err := store.Persist(ctx, "nobody", models.CategoryMaterials, datatypes.NewJSONType(map[string]int{"Wood": 1}), 0)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		payload := datatypes.NewJSONType(map[string]int{"Wood": 7, "Fabric": 0})
		ok, err := store.Persist(ctx, "user-1", models.CategoryMaterials, payload, 0)
		require.NoError(t, err)
		assert.True(t, ok)

		// An unchanged payload still counts as a match.
		ok, err = store.Persist(ctx, "user-1", models.CategoryMaterials, payload, 0)
		require.NoError(t, err)
		assert.True(t, ok)

		inv, err := store.Find(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 7, inv.Materials.Data()["Wood"])
		assert.Equal(t, int64(3), inv.Version)
	})

	t.Run("VersionCheck", func(t *testing.T) {
		inv, err := store.Find(ctx, "user-1")
		require.NoError(t, err)

		ok, err := store.Persist(ctx, "user-1", models.CategoryFurnishings,
			datatypes.NewJSONType(map[string]int{"Lamp": 2}), inv.Version)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Persist(ctx, "user-1", models.CategoryFurnishings,
			datatypes.NewJSONType(map[string]int{"Lamp": 9}), inv.Version)
		assert.ErrorIs(t, err, ErrVersionConflict)
		assert.False(t, ok)

		ok, err = store.Persist(ctx, "nobody", models.CategoryFurnishings,
			datatypes.NewJSONType(map[string]int{}), 5)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("OtherCategoriesUntouched", func(t *testing.T) {
		inv, err := store.Find(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 7, inv.Materials.Data()["Wood"])
		assert.Equal(t, 2, inv.Furnishings.Data()["Lamp"])
		assert.Equal(t, map[string]bool{"Amber": false, "Kaeya": false, "Lisa": false}, inv.Characters.Data())
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := store.Persist(ctx, "user-1", models.Category("pets"), nil, 0)
		assert.ErrorContains(t, err, "unknown inventory category")
	})
}
