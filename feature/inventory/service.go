package inventory

import (
	"context"
	"fmt"

	"furnishing-helper/feature/catalog"
	"furnishing-helper/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Service reads and edits user inventories.
type Service struct {
	store   *Store
	catalog *catalog.Service
	logger  *zap.Logger
}

// NewService creates an inventory service.
func NewService(store *Store, catalogSvc *catalog.Service, logger *zap.Logger) *Service {
	return &Service{store: store, catalog: catalogSvc, logger: logger}
}

// Tables returns the reconciled tables of userID, creating the record on
// first access.
func (s *Service) Tables(ctx context.Context, userID string) (*models.Tables, error) {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	inv, err := s.store.FindOrCreate(ctx, userID, cat)
	if err != nil {
		return nil, err
	}
	tables := Reconcile(cat, inv)
	return &tables, nil
}

// SaveCharacters validates and persists the characters table.
func (s *Service) SaveCharacters(ctx context.Context, userID string, rows []models.CharacterRow, version int64) error {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := ValidateCharacters(cat, rows); err != nil {
		return err
	}
	return s.persist(ctx, userID, models.CategoryCharacters, datatypes.NewJSONType(SerializeCharacters(rows)), version)
}

// SaveQuantities validates and persists the materials or furnishings table.
func (s *Service) SaveQuantities(ctx context.Context, userID string, category models.Category, rows []models.QuantityRow, version int64) error {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var names []string
	var kind string
	switch category {
	case models.CategoryMaterials:
		names, kind = cat.Materials, "material"
	case models.CategoryFurnishings:
		names, kind = cat.Furnishings, "furnishing"
	default:
		return fmt.Errorf("category %q has no quantities", category)
	}

	if err := ValidateQuantities(kind, names, rows); err != nil {
		return err
	}
	return s.persist(ctx, userID, category, datatypes.NewJSONType(SerializeQuantities(rows)), version)
}

// SaveSets validates and persists the sets table.
func (s *Service) SaveSets(ctx context.Context, userID string, rows []models.SetRow, version int64) error {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := ValidateSets(cat, rows); err != nil {
		return err
	}
	return s.persist(ctx, userID, models.CategorySets, datatypes.NewJSONType(SerializeSets(rows)), version)
}

func (s *Service) persist(ctx context.Context, userID string, category models.Category, payload any, version int64) error {
	ok, err := s.store.Persist(ctx, userID, category, payload, version)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInventoryNotFound
	}
	s.logger.Debug("Inventory category saved",
		zap.String("user_id", userID),
		zap.String("category", string(category)),
	)
	return nil
}
