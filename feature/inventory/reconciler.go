package inventory

import (
	"sort"
	"strings"

	"furnishing-helper/core/reconcile"
	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/inventory/models"
)

// setKeySep joins set and character names into one reconcile key. It cannot
// appear in either name.
const setKeySep = "\x00"

// Reconcile merges the catalog with a stored inventory. Every catalog entry
// gets a row; entries the user never recorded get false or 0, and recorded
// names the catalog no longer knows are dropped.
func Reconcile(cat *catalogmodels.Catalog, inv *models.Inventory) models.Tables {
	return models.Tables{
		Characters:  ReconcileCharacters(cat.Characters, inv.Characters.Data()),
		Materials:   ReconcileQuantities(cat.Materials, inv.Materials.Data()),
		Furnishings: ReconcileQuantities(cat.Furnishings, inv.Furnishings.Data()),
		Sets:        ReconcileSets(cat.GiftSets, inv.Sets.Data()),
		Version:     inv.Version,
	}
}

// ReconcileCharacters builds the characters table in catalog order.
func ReconcileCharacters(catalog []string, owned map[string]bool) []models.CharacterRow {
	joined := reconcile.LeftJoin(catalog, owned, false)
	rows := make([]models.CharacterRow, len(joined))
	for i, r := range joined {
		rows[i] = models.CharacterRow{Name: r.Key, Owned: r.Value}
	}
	return rows
}

// ReconcileQuantities builds a materials or furnishings table in catalog order.
func ReconcileQuantities(catalog []string, quantities map[string]int) []models.QuantityRow {
	joined := reconcile.LeftJoin(catalog, quantities, 0)
	rows := make([]models.QuantityRow, len(joined))
	for i, r := range joined {
		rows[i] = models.QuantityRow{Name: r.Key, Quantity: r.Value}
	}
	return rows
}

// ReconcileSets builds one row per (set, character) pair the catalog allows.
// Claims for characters a set does not list are dropped. Rows are stably
// sorted by set name, keeping the catalog character order within a set.
func ReconcileSets(sets []catalogmodels.GiftSet, claims []models.SetClaims) []models.SetRow {
	var keys []string
	for _, s := range sets {
		for _, c := range s.Characters {
			keys = append(keys, s.Name+setKeySep+c)
		}
	}

	claimed := make(map[string]bool)
	for _, sc := range claims {
		for c, v := range sc.Characters {
			claimed[sc.Name+setKeySep+c] = v
		}
	}

	joined := reconcile.LeftJoin(keys, claimed, false)
	rows := make([]models.SetRow, len(joined))
	for i, r := range joined {
		name, character := splitSetKey(r.Key)
		rows[i] = models.SetRow{Name: name, Character: character, Claimed: r.Value}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// SerializeCharacters turns the characters table back into record shape.
func SerializeCharacters(rows []models.CharacterRow) map[string]bool {
	joined := make([]reconcile.Row[bool], len(rows))
	for i, r := range rows {
		joined[i] = reconcile.Row[bool]{Key: r.Name, Value: r.Owned}
	}
	return reconcile.Collapse(joined)
}

// SerializeQuantities turns a materials or furnishings table back into record shape.
func SerializeQuantities(rows []models.QuantityRow) map[string]int {
	joined := make([]reconcile.Row[int], len(rows))
	for i, r := range rows {
		joined[i] = reconcile.Row[int]{Key: r.Name, Value: r.Quantity}
	}
	return reconcile.Collapse(joined)
}

// SerializeSets groups set rows by set name, in first-seen order.
func SerializeSets(rows []models.SetRow) []models.SetClaims {
	out := []models.SetClaims{}
	index := make(map[string]int)
	for _, r := range rows {
		i, ok := index[r.Name]
		if !ok {
			i = len(out)
			index[r.Name] = i
			out = append(out, models.SetClaims{Name: r.Name, Characters: map[string]bool{}})
		}
		out[i].Characters[r.Character] = r.Claimed
	}
	return out
}

func splitSetKey(key string) (set, character string) {
	set, character, _ = strings.Cut(key, setKeySep)
	return set, character
}
