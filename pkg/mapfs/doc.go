// Package mapfs implements a hierarchical, path-addressed virtual filesystem
// on top of a flat string key-value store.
//
// The backing store has no native notion of directories, paths, or binary
// content. Each filesystem entry is one key-value pair: the key is the
// normalized absolute path, the value packs the entry type (directory or
// file) together with the payload into a single string. The hierarchy is
// never materialized in memory; listings and traversals are reconstructed on
// demand by filtering the full key listing by prefix and depth.
//
// Key types:
//   - Map: the key-value store contract consumed by the filesystem
//   - Filesystem: the filesystem operation set (Mkdir, Cd, Touch, Rm, Cp,
//     Mv, ReadText, ReadBin, Ls, ...)
//   - Logger: the pluggable error-reporting sink
//
// Store implementations (in-memory, file, PostgreSQL, S3, gzip decorator)
// live in internal/store.
package mapfs
