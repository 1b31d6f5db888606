package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_NothingToClaim(t *testing.T) {
	out := Render(&Result{NothingToClaim: true})
	assert.Contains(t, out, NothingToClaimMessage)
}

func TestRender_Tables(t *testing.T) {
	out := Render(&Result{
		EligibleSets: []string{"Lamp Set"},
		Craft:        []FurnishingNeed{{Name: "Lamp", Amount: 3}},
		Materials:    []MaterialNeed{{Name: "Wood", Needed: 6, Owned: 2, Shortfall: 4}},
	})

	assert.Contains(t, out, "Lamp Set")
	assert.Contains(t, out, "Furnishing")
	assert.Contains(t, out, "Lamp")
	assert.Contains(t, out, "Shortfall")
	assert.Contains(t, out, "Wood")
	assert.Contains(t, out, "nothing")
}
