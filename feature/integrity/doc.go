// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Bucket: the object storage bucket holding the catalog document exists (supports ?fix=true).
//   - Catalog: the catalog document exists, parses and contains only valid gift sets.
//   - Server: the connected database schema matches the GORM models (tables, columns, pinned types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/bucket : Runs bucket check.
//   - GET /integrity/catalog : Runs catalog document check.
//   - GET /integrity/server : Runs server schema check.
package integrity
