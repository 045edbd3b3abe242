// Package store provides implementations of the mapfs.Map contract.
//
// Implementations:
//   - MemoryStore: mutex-guarded in-process map, no durability
//   - FileStore: JSON snapshot on the local filesystem, persisted on Flush
//   - PostgresStore: single key-value table via pgx, write-back on Flush
//   - S3Store: one object per key under a bucket prefix, write-back on Flush
//   - GzipStore: transparent compression decorator over any Map
//
// All remote stores follow the same write-back model: the full key set is
// loaded into memory when the store is opened, mutations are tracked
// in-process, and Flush persists the accumulated changes. This keeps every
// read immediately consistent with prior writes on the same instance, which
// is what the filesystem layer assumes.
package store
