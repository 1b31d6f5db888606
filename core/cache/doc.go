// Package cache provides the catalog snapshot cache.
//
// The catalog is static reference data read on every inventory request, so the
// catalog service keeps a serialized snapshot in a Store. Two backends exist:
//   - Memory: process-local, RWMutex guarded, per-entry TTL.
//   - Redis: shared between replicas, selected by cache.redis_addr.
//
// Loader adds read-through loading with singleflight so a cold cache triggers a
// single database read no matter how many requests arrive together. A TTL of zero
// disables caching.
package cache
