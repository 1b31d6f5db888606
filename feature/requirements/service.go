package requirements

import (
	"context"
	"fmt"

	"furnishing-helper/feature/catalog"
	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/inventory"
	"furnishing-helper/feature/inventory/models"

	"go.uber.org/zap"
)

// Service computes requirements for a user.
type Service struct {
	inventory *inventory.Service
	catalog   *catalog.Service
	logger    *zap.Logger
}

// NewService creates a requirements service.
func NewService(inventorySvc *inventory.Service, catalogSvc *catalog.Service, logger *zap.Logger) *Service {
	return &Service{inventory: inventorySvc, catalog: catalogSvc, logger: logger}
}

// Compute calculates what userID still needs. When edited is non-nil its
// tables are used, with set rows restricted to the (set, character) pairs
// the catalog grants; otherwise the stored inventory is loaded. Gift set
// definitions always come straight from the catalog store.
func (s *Service) Compute(ctx context.Context, userID string, edited *models.Tables) (*Result, error) {
	var tables *models.Tables
	var err error
	if edited != nil {
		tables, err = s.restrictToCatalog(ctx, edited)
	} else {
		tables, err = s.inventory.Tables(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	names := EligibleSets(tables)
	if len(names) == 0 {
		return Calculate(tables, nil), nil
	}

	sets, err := s.catalog.FindSets(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch eligible sets: %w", err)
	}
	for i := range sets {
		if err := sets[i].Validate(); err != nil {
			return nil, fmt.Errorf("catalog is malformed: %w", err)
		}
	}

	res := Calculate(tables, sets)
	s.logger.Debug("Requirements computed",
		zap.String("user_id", userID),
		zap.Int("eligible_sets", len(sets)),
		zap.Int("craft", len(res.Craft)),
		zap.Int("buy", len(res.Buy)),
		zap.Int("materials", len(res.Materials)),
	)
	return res, nil
}

// restrictToCatalog returns a copy of edited without the set rows whose
// character the catalog does not list as granting that set.
func (s *Service) restrictToCatalog(ctx context.Context, edited *models.Tables) (*models.Tables, error) {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	definitions := make(map[string]*catalogmodels.GiftSet, len(cat.GiftSets))
	for i := range cat.GiftSets {
		definitions[cat.GiftSets[i].Name] = &cat.GiftSets[i]
	}

	tables := *edited
	tables.Sets = make([]models.SetRow, 0, len(edited.Sets))
	for _, row := range edited.Sets {
		if set, ok := definitions[row.Name]; ok && set.Grants(row.Character) {
			tables.Sets = append(tables.Sets, row)
		}
	}
	return &tables, nil
}
