package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"furnishing-helper/core/cache"
	"furnishing-helper/core/reconcile"
	"furnishing-helper/core/storage"
	"furnishing-helper/feature/catalog/models"

	"go.uber.org/zap"
)

const snapshotKey = "catalog:snapshot"

// SyncReport is the outcome of a catalog sync run.
type SyncReport struct {
	Plan     *reconcile.Plan `json:"plan"`
	Executed int             `json:"executed"`
	// Invalid lists document entries that failed validation and were skipped.
	Invalid []string `json:"invalid"`
}

// Service exposes the catalog to the other features.
type Service struct {
	store      *Store
	client     storage.Client
	bucket     string
	objectName string
	loader     *cache.Loader
	logger     *zap.Logger
}

// NewService creates a catalog service. A nil loader disables snapshot caching.
func NewService(store *Store, client storage.Client, cfg storage.Config, loader *cache.Loader, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		client:     client,
		bucket:     cfg.Bucket,
		objectName: cfg.CatalogObject,
		loader:     loader,
		logger:     logger,
	}
}

// Store returns the underlying catalog store.
func (s *Service) Store() *Store {
	return s.store
}

// ObjectName returns the object key of the catalog document.
func (s *Service) ObjectName() string {
	return s.objectName
}

// Snapshot returns the catalog, served from the snapshot cache when possible.
func (s *Service) Snapshot(ctx context.Context) (*models.Catalog, error) {
	if s.loader == nil {
		return s.store.Load(ctx)
	}

	data, err := s.loader.GetOrLoad(ctx, snapshotKey, func(ctx context.Context) ([]byte, error) {
		cat, err := s.store.Load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(cat)
	})
	if err != nil {
		return nil, err
	}

	var cat models.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}
	return &cat, nil
}

// FindSets fetches gift set definitions straight from the store, bypassing
// the snapshot cache.
func (s *Service) FindSets(ctx context.Context, names []string) ([]models.GiftSet, error) {
	return s.store.FindSetsByNames(ctx, names)
}

// LoadDocument reads and parses the catalog document from object storage.
func (s *Service) LoadDocument(ctx context.Context) (*models.Catalog, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	data, err := storage.ReadObject(ctx, s.client, s.bucket, s.objectName)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(s.objectName, data)
}

// Sync reconciles the database against the catalog document and, when
// opts allow it, applies the plan. The snapshot cache is dropped after any
// executed change.
func (s *Service) Sync(ctx context.Context, opts reconcile.Options) (*SyncReport, error) {
	adapter := NewSyncAdapter(s.store, s.LoadDocument)

	plan, executed, err := reconcile.PlanAndApply(ctx, adapter, adapter, opts)
	report := &SyncReport{Plan: plan, Executed: executed, Invalid: adapter.Invalid}
	if executed > 0 {
		s.invalidate(ctx)
	}
	if err != nil {
		return report, err
	}

	s.logger.Info("Catalog sync finished",
		zap.Int("total", plan.Summary.TotalItems),
		zap.Int("executed", executed),
		zap.Int("invalid", len(adapter.Invalid)),
		zap.Bool("dry_run", opts.DryRun),
	)
	return report, nil
}

// Export writes the database catalog to the catalog document object.
func (s *Service) Export(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("storage client is not configured")
	}
	cat, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	data, contentType, err := EncodeDocument(s.objectName, cat)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return storage.WriteObject(ctx, s.client, s.bucket, s.objectName, data, contentType)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.loader == nil {
		return
	}
	if err := s.loader.Invalidate(ctx, snapshotKey); err != nil {
		s.logger.Warn("Failed to invalidate catalog snapshot", zap.Error(err))
	}
}
