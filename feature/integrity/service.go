package integrity

import (
	"context"

	"furnishing-helper/core/storage"
	"furnishing-helper/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report combines every integrity check. Each section holds either the
// check result or an error message.
type Report struct {
	Healthy bool           `json:"healthy"`
	Bucket  map[string]any `json:"bucket"`
	Catalog map[string]any `json:"catalog"`
	Server  map[string]any `json:"server"`
}

// Service handles integrity checks.
type Service struct {
	client     storage.Client
	bucket     string
	objectName string
	db         *gorm.DB
	models     []any
	logger     *zap.Logger
}

// NewService creates a new integrity service. models are the GORM models
// whose tables the server check verifies.
func NewService(client storage.Client, cfg storage.Config, db *gorm.DB, models []any, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		bucket:     cfg.Bucket,
		objectName: cfg.CatalogObject,
		db:         db,
		models:     models,
		logger:     logger,
	}
}

// CheckBucket reports whether the catalog bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixBucket creates the catalog bucket when missing.
func (s *Service) FixBucket(ctx context.Context) (*checks.BucketReport, error) {
	return checks.FixBucket(ctx, s.client, s.bucket, s.logger)
}

// CheckCatalog inspects the catalog document.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	return checks.CheckCatalogDocument(ctx, s.client, s.bucket, s.objectName)
}

// CheckServer verifies the database schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db, s.models...)
}

// CheckAll runs every check. Failures are recorded per section and never
// abort the other checks.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Healthy: true}

	if res, err := s.CheckBucket(ctx); err != nil {
		report.Bucket = errorSection(err)
		report.Healthy = false
	} else {
		report.Bucket = map[string]any{"status": status(res.Exists), "report": res}
		report.Healthy = report.Healthy && res.Exists
	}

	if res, err := s.CheckCatalog(ctx); err != nil {
		report.Catalog = errorSection(err)
		report.Healthy = false
	} else {
		report.Catalog = map[string]any{"status": status(res.OK()), "report": res}
		report.Healthy = report.Healthy && res.OK()
	}

	if res, err := s.CheckServer(); err != nil {
		report.Server = errorSection(err)
		report.Healthy = false
	} else {
		report.Server = map[string]any{"status": status(res.Matched), "report": res}
		report.Healthy = report.Healthy && res.Matched
	}

	return report
}

func errorSection(err error) map[string]any {
	return map[string]any{"status": "error", "error": err.Error()}
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
