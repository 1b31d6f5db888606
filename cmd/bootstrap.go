package cmd

import (
	"context"
	"fmt"

	"furnishing-helper/core/cache"
	"furnishing-helper/core/config"
	"furnishing-helper/core/database"
	"furnishing-helper/core/logger"
	"furnishing-helper/core/storage"
	"furnishing-helper/feature/account"
	accountmodels "furnishing-helper/feature/account/models"
	"furnishing-helper/feature/catalog"
	catalogmodels "furnishing-helper/feature/catalog/models"
	"furnishing-helper/feature/integrity"
	"furnishing-helper/feature/inventory"
	inventorymodels "furnishing-helper/feature/inventory/models"
	"furnishing-helper/feature/requirements"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services wires every feature service on top of the shared infrastructure.
type services struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	client storage.Client
	cache  cache.Store

	catalog      *catalog.Service
	inventory    *inventory.Service
	requirements *requirements.Service
	account      *account.Service
	integrity    *integrity.Service
}

// schemaModels lists every table the application owns.
func schemaModels() []any {
	models := catalogmodels.Tables()
	return append(models, &inventorymodels.Inventory{}, &accountmodels.Account{})
}

// bootstrap loads configuration, connects the database, object storage and
// cache, migrates the schema and builds the feature services.
func bootstrap(ctx context.Context) (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	catalogStore := catalog.NewStore(db)
	inventoryStore := inventory.NewStore(db)
	accountSvc := account.NewService(db, cfg.Server, logg)

	migrations := []struct {
		name    string
		migrate func(context.Context) error
	}{
		{"catalog", catalogStore.AutoMigrate},
		{"inventory", inventoryStore.AutoMigrate},
		{"account", accountSvc.AutoMigrate},
	}
	for _, m := range migrations {
		if err := m.migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate %s schema: %w", m.name, err)
		}
	}

	catalogSvc := catalog.NewService(catalogStore, client, cfg.Storage, cache.NewLoader(store, cfg.Cache.TTL()), logg)
	inventorySvc := inventory.NewService(inventoryStore, catalogSvc, logg)

	return &services{
		cfg:          cfg,
		logger:       logg,
		db:           db,
		client:       client,
		cache:        store,
		catalog:      catalogSvc,
		inventory:    inventorySvc,
		requirements: requirements.NewService(inventorySvc, catalogSvc, logg),
		account:      accountSvc,
		integrity:    integrity.NewService(client, cfg.Storage, db, schemaModels(), logg),
	}, nil
}

// Close releases the cache backend and the database pool.
func (s *services) Close() {
	if closer, ok := s.cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = s.logger.Sync()
}
