// Package catalogtest provides catalog fixtures for tests.
package catalogtest

import (
	"context"
	"testing"

	"furnishing-helper/feature/catalog/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Sample returns a small catalog. "Lamp Set" needs a craftable Lamp,
// "Garden Set" needs a Bench that can only be bought.
func Sample() *models.Catalog {
	return &models.Catalog{
		Characters:  []string{"Amber", "Kaeya", "Lisa"},
		Materials:   []string{"Wood", "Fabric"},
		Furnishings: []string{"Lamp", "Bench"},
		GiftSets: []models.GiftSet{
			{
				Name:       "Lamp Set",
				Type:       "Outdoor Gift Set",
				Characters: []string{"Amber", "Kaeya"},
				Requirements: []models.Requirement{
					{Name: "Lamp", Recipe: []models.Ingredient{{Name: "Wood", Quantity: 2}}, Amount: 3},
				},
			},
			{
				Name:       "Garden Set",
				Type:       "Outdoor Gift Set",
				Characters: []string{"Lisa"},
				Requirements: []models.Requirement{
					{Name: "Bench", Recipe: []models.Ingredient{}, Amount: 5},
				},
			},
		},
	}
}

// Seed inserts cat into the catalog tables.
func Seed(t testing.TB, db *gorm.DB, cat *models.Catalog) {
	t.Helper()

	tx := db.WithContext(context.Background())
	for _, n := range cat.Characters {
		require.NoError(t, tx.Create(&models.Character{Name: n}).Error)
	}
	for _, n := range cat.Materials {
		require.NoError(t, tx.Create(&models.Material{Name: n}).Error)
	}
	for _, n := range cat.Furnishings {
		require.NoError(t, tx.Create(&models.Furnishing{Name: n}).Error)
	}
	for i := range cat.GiftSets {
		set := cat.GiftSets[i]
		require.NoError(t, tx.Create(&set).Error)
	}
}
