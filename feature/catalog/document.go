package catalog

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"furnishing-helper/feature/catalog/models"

	"gopkg.in/yaml.v3"
)

// DecodeDocument parses a catalog document. The format follows the object
// extension: .yaml and .yml are YAML, anything else is JSON.
func DecodeDocument(objectName string, data []byte) (*models.Catalog, error) {
	var cat models.Catalog
	if isYAML(objectName) {
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", objectName, err)
		}
		return &cat, nil
	}
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", objectName, err)
	}
	return &cat, nil
}

// EncodeDocument serializes a catalog in the format implied by objectName
// and returns the matching content type.
func EncodeDocument(objectName string, cat *models.Catalog) ([]byte, string, error) {
	if isYAML(objectName) {
		data, err := yaml.Marshal(cat)
		if err != nil {
			return nil, "", err
		}
		return data, "application/yaml", nil
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// ValidSets splits the document gift sets into valid ones and validation
// messages for the rest. Duplicate set names are reported too.
func ValidSets(cat *models.Catalog) ([]models.GiftSet, []string) {
	valid := make([]models.GiftSet, 0, len(cat.GiftSets))
	var problems []string
	seen := make(map[string]struct{}, len(cat.GiftSets))

	for i := range cat.GiftSets {
		set := cat.GiftSets[i]
		if err := set.Validate(); err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if _, dup := seen[set.Name]; dup {
			problems = append(problems, fmt.Sprintf("gift set %q is defined more than once", set.Name))
			continue
		}
		seen[set.Name] = struct{}{}
		valid = append(valid, set)
	}
	return valid, problems
}

func isYAML(objectName string) bool {
	ext := strings.ToLower(path.Ext(objectName))
	return ext == ".yaml" || ext == ".yml"
}
