package requirements

import (
	"sort"

	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/inventory/models"
)

// FurnishingNeed is a furnishing still to craft or buy.
type FurnishingNeed struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// MaterialNeed is a material the user is short of.
type MaterialNeed struct {
	Name      string `json:"name"`
	Needed    int    `json:"needed"`
	Owned     int    `json:"owned"`
	Shortfall int    `json:"shortfall"`
}

// Result is the outcome of a requirements calculation. When NothingToClaim
// is set the three tables are empty.
type Result struct {
	NothingToClaim bool             `json:"nothing_to_claim"`
	EligibleSets   []string         `json:"eligible_sets"`
	Craft          []FurnishingNeed `json:"craft"`
	Buy            []FurnishingNeed `json:"buy"`
	Materials      []MaterialNeed   `json:"materials"`
}

// EligibleSets returns, in first-seen order, the names of sets that some
// owned character has not claimed yet.
func EligibleSets(tables *models.Tables) []string {
	owned := make(map[string]bool, len(tables.Characters))
	for _, c := range tables.Characters {
		owned[c.Name] = c.Owned
	}

	names := []string{}
	seen := make(map[string]struct{})
	for _, r := range tables.Sets {
		if !owned[r.Character] || r.Claimed {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}
	return names
}

// requirement is one flattened furnishing line of an eligible set.
type requirement struct {
	name   string
	recipe []catalogmodels.Ingredient
	amount int
}

// Calculate works out what is still needed to claim every given set, netted
// against the furnishings and materials in tables. sets are the full
// definitions of the eligible sets, ordered by name.
func Calculate(tables *models.Tables, sets []catalogmodels.GiftSet) *Result {
	if len(sets) == 0 {
		return &Result{NothingToClaim: true, EligibleSets: []string{}, Craft: []FurnishingNeed{}, Buy: []FurnishingNeed{}, Materials: []MaterialNeed{}}
	}

	res := &Result{
		EligibleSets: make([]string, 0, len(sets)),
		Craft:        []FurnishingNeed{},
		Buy:          []FurnishingNeed{},
		Materials:    []MaterialNeed{},
	}
	for _, s := range sets {
		res.EligibleSets = append(res.EligibleSets, s.Name)
	}

	ownedFurnishings := quantities(tables.Furnishings)
	ownedMaterials := quantities(tables.Materials)

	needed := make(map[string]int)
	var materialOrder []string
	for _, r := range maxAmounts(flatten(sets)) {
		remaining := r.amount - ownedFurnishings[r.name]
		if remaining <= 0 {
			continue
		}
		need := FurnishingNeed{Name: r.name, Amount: remaining}
		if len(r.recipe) == 0 {
			res.Buy = append(res.Buy, need)
			continue
		}
		res.Craft = append(res.Craft, need)
		for _, ing := range r.recipe {
			if _, ok := needed[ing.Name]; !ok {
				materialOrder = append(materialOrder, ing.Name)
			}
			needed[ing.Name] += ing.Quantity * remaining
		}
	}

	sort.Strings(materialOrder)
	for _, name := range materialOrder {
		owned := ownedMaterials[name]
		if needed[name] <= owned {
			continue
		}
		res.Materials = append(res.Materials, MaterialNeed{
			Name:      name,
			Needed:    needed[name],
			Owned:     owned,
			Shortfall: needed[name] - owned,
		})
	}
	return res
}

func flatten(sets []catalogmodels.GiftSet) []requirement {
	var out []requirement
	for _, s := range sets {
		for _, r := range s.Requirements {
			out = append(out, requirement{name: r.Name, recipe: r.Recipe, amount: r.Amount})
		}
	}
	return out
}

// maxAmounts keeps, per furnishing, every row carrying the largest amount.
// Rows tied at the maximum all survive, each with its own recipe.
func maxAmounts(rows []requirement) []requirement {
	best := make(map[string]int)
	for _, r := range rows {
		if cur, ok := best[r.name]; !ok || r.amount > cur {
			best[r.name] = r.amount
		}
	}

	out := make([]requirement, 0, len(rows))
	for _, r := range rows {
		if r.amount == best[r.name] {
			out = append(out, r)
		}
	}
	return out
}

func quantities(rows []models.QuantityRow) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Quantity
	}
	return out
}
