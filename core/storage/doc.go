// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the operations
// the catalog needs: checking bucket existence, uploading and downloading the catalog
// document and listing objects. This supports both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - ReadObject: downloads an object fully.
//   - WriteObject: uploads an object, creating the bucket when missing.
//   - ObjectExists: checks for an exact key through a prefix listing.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.ReadObject(ctx, client, cfg.Bucket, cfg.CatalogObject)
package storage
