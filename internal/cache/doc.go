// Package cache provides per-address caching of fetched transaction lists.
//
// Backends:
//   - FileStore: one JSON file per address, expiry from the file mtime
//   - MemoryStore: in-process map, used in tests and short-lived runs
//   - RedisStore: shared cache with native TTL expiry
//
// Lookups are best-effort: a cache failure is reported as a miss, never as
// an error.
package cache
