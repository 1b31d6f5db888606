package inventory

import (
	"fmt"
	"strings"

	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/inventory/models"

	"github.com/agnivade/levenshtein"
)

// ValidationError lists every problem found in a submitted table.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid inventory rows: " + strings.Join(e.Problems, "; ")
}

type validator struct {
	problems []string
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}

// unknown reports name as missing from the catalog, with a suggestion when
// a close catalog name exists.
func (v *validator) unknown(kind, name string, candidates []string) {
	if s := Suggest(name, candidates); s != "" {
		v.addf("unknown %s %q (did you mean %q?)", kind, name, s)
		return
	}
	v.addf("unknown %s %q", kind, name)
}

// Suggest returns the candidate closest to name by edit distance, or "" when
// none is close enough. Case is ignored.
func Suggest(name string, candidates []string) string {
	best := ""
	bestDist := -1
	lower := strings.ToLower(name)
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(cand))
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func setOf(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// ValidateCharacters checks that every row names a catalog character.
func ValidateCharacters(cat *catalogmodels.Catalog, rows []models.CharacterRow) error {
	var v validator
	known := setOf(cat.Characters)
	for _, r := range rows {
		if _, ok := known[r.Name]; !ok {
			v.unknown("character", r.Name, cat.Characters)
		}
	}
	return v.err()
}

// ValidateQuantities checks names against catalog and rejects negative quantities.
// kind is used in messages ("material" or "furnishing").
func ValidateQuantities(kind string, catalog []string, rows []models.QuantityRow) error {
	var v validator
	known := setOf(catalog)
	for _, r := range rows {
		if _, ok := known[r.Name]; !ok {
			v.unknown(kind, r.Name, catalog)
			continue
		}
		if r.Quantity < 0 {
			v.addf("%s %q has negative quantity %d", kind, r.Name, r.Quantity)
		}
	}
	return v.err()
}

// ValidateSets checks that every row names a catalog set and a character that
// set lists.
func ValidateSets(cat *catalogmodels.Catalog, rows []models.SetRow) error {
	var v validator
	sets := make(map[string]*catalogmodels.GiftSet, len(cat.GiftSets))
	for i := range cat.GiftSets {
		sets[cat.GiftSets[i].Name] = &cat.GiftSets[i]
	}

	for _, r := range rows {
		set, ok := sets[r.Name]
		if !ok {
			v.unknown("gift set", r.Name, cat.SetNames())
			continue
		}
		if !set.Grants(r.Character) {
			v.addf("gift set %q is not granted by character %q", r.Name, r.Character)
		}
	}
	return v.err()
}
