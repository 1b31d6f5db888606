package inventory

import (
	"context"
	"errors"
	"fmt"

	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/inventory/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrInventoryNotFound is returned when a write matches no stored record.
	ErrInventoryNotFound = errors.New("inventory not found")
	// ErrVersionConflict is returned when the record changed since the
	// version the caller read.
	ErrVersionConflict = errors.New("inventory version conflict")
)

// Store persists inventory records.
type Store struct {
	db *gorm.DB
}

// NewStore creates an inventory store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the inventories table.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Inventory{})
}

// Find returns the record of userID, or ErrInventoryNotFound.
func (s *Store) Find(ctx context.Context, userID string) (*models.Inventory, error) {
	var inv models.Inventory
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}
	return &inv, nil
}

// FindOrCreate returns the record of userID, creating it with every catalog
// entry at its default on first access.
func (s *Store) FindOrCreate(ctx context.Context, userID string, cat *catalogmodels.Catalog) (*models.Inventory, error) {
	inv, err := s.Find(ctx, userID)
	if !errors.Is(err, ErrInventoryNotFound) {
		return inv, err
	}

	inv = NewDefault(userID, cat)
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		// A concurrent first access may have created it.
		if existing, findErr := s.Find(ctx, userID); findErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	return inv, nil
}

// NewDefault builds a record holding every catalog entry at false or 0.
func NewDefault(userID string, cat *catalogmodels.Catalog) *models.Inventory {
	return &models.Inventory{
		UserID:      userID,
		Characters:  datatypes.NewJSONType(SerializeCharacters(ReconcileCharacters(cat.Characters, nil))),
		Materials:   datatypes.NewJSONType(SerializeQuantities(ReconcileQuantities(cat.Materials, nil))),
		Furnishings: datatypes.NewJSONType(SerializeQuantities(ReconcileQuantities(cat.Furnishings, nil))),
		Sets:        datatypes.NewJSONType(SerializeSets(ReconcileSets(cat.GiftSets, nil))),
		Version:     1,
	}
}

// Persist overwrites one category of the record of userID and bumps its
// version. It reports false when no record exists for userID.
//
// A non-zero expectedVersion only matches the record at that version;
// a record at any other version yields ErrVersionConflict.
func (s *Store) Persist(ctx context.Context, userID string, category models.Category, payload any, expectedVersion int64) (bool, error) {
	if !category.Valid() {
		return false, fmt.Errorf("unknown inventory category %q", category)
	}

	q := s.db.WithContext(ctx).Model(&models.Inventory{}).Where("user_id = ?", userID)
	if expectedVersion > 0 {
		q = q.Where("version = ?", expectedVersion)
	}
	res := q.Updates(map[string]any{
		category.Column(): payload,
		"version":         gorm.Expr("version + 1"),
	})
	if res.Error != nil {
		return false, fmt.Errorf("failed to persist %s: %w", category, res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	if expectedVersion > 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Inventory{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check inventory: %w", err)
		}
		if count > 0 {
			return false, ErrVersionConflict
		}
	}
	return false, nil
}
