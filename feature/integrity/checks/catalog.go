package checks

import (
	"context"

	"furnishing-helper/core/storage"
	"furnishing-helper/feature/catalog"
)

// CatalogReport describes the catalog document in object storage.
type CatalogReport struct {
	Object  string `json:"object"`
	Present bool   `json:"present"`
	// ParseError is set when the document exists but cannot be decoded.
	ParseError string `json:"parse_error,omitempty"`
	// Invalid lists gift sets that would be skipped by catalog sync.
	Invalid []string `json:"invalid"`
	Counts  struct {
		Characters  int `json:"characters"`
		Materials   int `json:"materials"`
		Furnishings int `json:"furnishings"`
		GiftSets    int `json:"gift_sets"`
	} `json:"counts"`
}

// OK reports whether the document is present, readable and fully valid.
func (r *CatalogReport) OK() bool {
	return r.Present && r.ParseError == "" && len(r.Invalid) == 0
}

// CheckCatalogDocument verifies that the catalog document exists, parses,
// and holds only valid gift sets.
func CheckCatalogDocument(ctx context.Context, client storage.Client, bucket, objectName string) (*CatalogReport, error) {
	report := &CatalogReport{Object: objectName, Invalid: []string{}}

	present, err := storage.ObjectExists(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}
	report.Present = present
	if !present {
		return report, nil
	}

	data, err := storage.ReadObject(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.DecodeDocument(objectName, data)
	if err != nil {
		report.ParseError = err.Error()
		return report, nil
	}

	valid, problems := catalog.ValidSets(cat)
	if problems != nil {
		report.Invalid = problems
	}
	report.Counts.Characters = len(cat.Characters)
	report.Counts.Materials = len(cat.Materials)
	report.Counts.Furnishings = len(cat.Furnishings)
	report.Counts.GiftSets = len(valid)
	return report, nil
}
