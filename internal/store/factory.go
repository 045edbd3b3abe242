package store

import (
	"context"
	"fmt"

	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// Backend identifies a store implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendPostgres Backend = "postgres"
	BackendS3       Backend = "s3"
)

// Compression identifies the value encoding applied on top of a backend.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
)

// Options selects and configures a backend.
type Options struct {
	Backend     Backend
	Compression Compression

	// Path is the store file location (file backend).
	Path string

	// ConnString is the PostgreSQL connection string (postgres backend).
	ConnString string

	// S3 configures the s3 backend.
	S3 S3Config
}

// Open constructs the configured backend and wraps it with the configured
// compression decorator.
func Open(ctx context.Context, opts Options, logger mapfs.Logger) (mapfs.Map, error) {
	var (
		m   mapfs.Map
		err error
	)
	switch opts.Backend {
	case BackendMemory, "":
		m = NewMemoryStore()
	case BackendFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file store requires a path: %w", mapfs.ErrInvalidConfig)
		}
		m, err = OpenFileStore(opts.Path)
	case BackendPostgres:
		if opts.ConnString == "" {
			return nil, fmt.Errorf("postgres store requires a connection string: %w", mapfs.ErrInvalidConfig)
		}
		m, err = OpenPostgresStore(ctx, opts.ConnString, logger)
	case BackendS3:
		m, err = OpenS3Store(ctx, opts.S3, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q: %w", opts.Backend, mapfs.ErrInvalidConfig)
	}
	if err != nil {
		return nil, err
	}

	switch opts.Compression {
	case CompressionNone, "":
		return m, nil
	case CompressionGzip:
		return NewGzipStore(m, logger), nil
	default:
		return nil, fmt.Errorf("unknown compression %q: %w", opts.Compression, mapfs.ErrInvalidConfig)
	}
}
