package catalog

import (
	"context"
	"fmt"

	"furnishing-helper/feature/catalog/models"

	"gorm.io/gorm"
)

// Store reads and writes the catalog tables.
type Store struct {
	db *gorm.DB
}

// NewStore creates a catalog store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the catalog tables.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.Tables()...)
}

// Load reads the whole catalog. Names keep insertion order, gift sets are
// ordered by name.
func (s *Store) Load(ctx context.Context) (*models.Catalog, error) {
	var cat models.Catalog
	var err error

	if cat.Characters, err = s.names(ctx, &models.Character{}); err != nil {
		return nil, err
	}
	if cat.Materials, err = s.names(ctx, &models.Material{}); err != nil {
		return nil, err
	}
	if cat.Furnishings, err = s.names(ctx, &models.Furnishing{}); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Order("name").Find(&cat.GiftSets).Error; err != nil {
		return nil, fmt.Errorf("failed to load gift sets: %w", err)
	}
	return &cat, nil
}

// FindSetsByNames fetches the named gift sets ordered by name. Unknown
// names are ignored.
func (s *Store) FindSetsByNames(ctx context.Context, names []string) ([]models.GiftSet, error) {
	sets := []models.GiftSet{}
	if len(names) == 0 {
		return sets, nil
	}
	if err := s.db.WithContext(ctx).Where("name IN ?", names).Order("name").Find(&sets).Error; err != nil {
		return nil, fmt.Errorf("failed to find gift sets: %w", err)
	}
	return sets, nil
}

func (s *Store) names(ctx context.Context, model any) ([]string, error) {
	names := []string{}
	if err := s.db.WithContext(ctx).Model(model).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list %T names: %w", model, err)
	}
	return names, nil
}

// Insert creates catalog entries in one transaction.
func (s *Store) Insert(ctx context.Context, entries []models.Entry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			var row any
			switch e.Kind {
			case models.KindCharacter:
				row = &models.Character{Name: e.Name}
			case models.KindMaterial:
				row = &models.Material{Name: e.Name}
			case models.KindFurnishing:
				row = &models.Furnishing{Name: e.Name}
			case models.KindGiftSet:
				if e.Set == nil {
					return fmt.Errorf("gift set %q has no definition", e.Name)
				}
				set := *e.Set
				set.ID = 0
				row = &set
			default:
				return fmt.Errorf("unknown catalog kind %q", e.Kind)
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", e.Key(), err)
			}
		}
		return nil
	})
}

// Delete removes catalog entries by kind and name in one transaction.
func (s *Store) Delete(ctx context.Context, entries []models.Entry) error {
	byKind := make(map[string][]string)
	for _, e := range entries {
		byKind[e.Kind] = append(byKind[e.Kind], e.Name)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for kind, names := range byKind {
			model, err := modelFor(kind)
			if err != nil {
				return err
			}
			if err := tx.Where("name IN ?", names).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to delete %s entries: %w", kind, err)
			}
		}
		return nil
	})
}

// UpdateSets overwrites type, characters and requirements of existing gift sets.
func (s *Store) UpdateSets(ctx context.Context, sets []models.GiftSet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, set := range sets {
			set.ID = 0
			res := tx.Model(&models.GiftSet{}).
				Where("name = ?", set.Name).
				Select("Type", "Characters", "Requirements").
				Updates(&set)
			if res.Error != nil {
				return fmt.Errorf("failed to update gift set %q: %w", set.Name, res.Error)
			}
		}
		return nil
	})
}

func modelFor(kind string) (any, error) {
	switch kind {
	case models.KindCharacter:
		return &models.Character{}, nil
	case models.KindMaterial:
		return &models.Material{}, nil
	case models.KindFurnishing:
		return &models.Furnishing{}, nil
	case models.KindGiftSet:
		return &models.GiftSet{}, nil
	}
	return nil, fmt.Errorf("unknown catalog kind %q", kind)
}
