package inventory

import (
	"testing"

	"furnishing-helper/feature/catalog/catalogtest"
	"furnishing-helper/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"Amber", "Kaeya", "Lisa"}

	assert.Equal(t, "Amber", Suggest("ambr", candidates))
	assert.Equal(t, "Lisa", Suggest("Lise", candidates))
	assert.Equal(t, "", Suggest("Zhongli", candidates))
}

func TestValidateQuantities(t *testing.T) {
	cat := catalogtest.Sample()

	assert.NoError(t, ValidateQuantities("material", cat.Materials, []models.QuantityRow{{Name: "Wood", Quantity: 20000}}))

	err := ValidateQuantities("material", cat.Materials, []models.QuantityRow{
		{Name: "Wod", Quantity: 1},
		{Name: "Fabric", Quantity: -1},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 2)
	assert.Equal(t, `unknown material "Wod" (did you mean "Wood"?)`, verr.Problems[0])
	assert.Contains(t, verr.Problems[1], "negative quantity")
}

func TestValidateCharacters(t *testing.T) {
	cat := catalogtest.Sample()

	assert.NoError(t, ValidateCharacters(cat, []models.CharacterRow{{Name: "Amber", Owned: true}}))
	assert.ErrorContains(t, ValidateCharacters(cat, []models.CharacterRow{{Name: "Venti"}}), `unknown character "Venti"`)
}

func TestValidateSets(t *testing.T) {
	cat := catalogtest.Sample()

	assert.NoError(t, ValidateSets(cat, []models.SetRow{{Name: "Lamp Set", Character: "Kaeya", Claimed: true}}))

	err := ValidateSets(cat, []models.SetRow{
		{Name: "Lamp Set", Character: "Lisa"},
		{Name: "Lamp St", Character: "Amber"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems[0], "not granted")
	assert.Contains(t, verr.Problems[1], `did you mean "Lamp Set"`)
}
