package checks

import (
	"context"
	"fmt"

	"furnishing-helper/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BucketReport is the result of the bucket check.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	Fixed  bool   `json:"fixed,omitempty"`
}

// CheckBucket reports whether the catalog bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*BucketReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &BucketReport{Bucket: bucket, Exists: exists}, nil
}

// FixBucket creates the bucket when it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) (*BucketReport, error) {
	report, err := CheckBucket(ctx, client, bucket)
	if err != nil || report.Exists {
		return report, err
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return nil, err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return &BucketReport{Bucket: bucket, Exists: true, Fixed: true}, nil
}
