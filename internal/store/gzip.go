package store

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// GzipStore is a compression decorator: values are gzip-compressed and
// base64-encoded before reaching the inner map, and decompressed on the way
// out. Keys pass through untouched, so the filesystem layer above never
// notices the encoding.
type GzipStore struct {
	inner  mapfs.Map
	logger mapfs.Logger
}

// NewGzipStore wraps inner with transparent gzip compression.
// Panics if inner or logger is nil.
func NewGzipStore(inner mapfs.Map, logger mapfs.Logger) *GzipStore {
	if inner == nil {
		panic("inner store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GzipStore{inner: inner, logger: logger}
}

// Contains reports whether the key is present in the inner map.
func (s *GzipStore) Contains(key string) bool {
	return s.inner.Contains(key)
}

// GetString returns the decompressed value for the key. An undecodable
// stored value is logged and surfaces as "".
func (s *GzipStore) GetString(key string) string {
	raw := s.inner.GetString(key)
	if raw == "" {
		return ""
	}
	value, err := decompressValue(raw)
	if err != nil {
		s.logger.Error("Cannot decompress value for key %s: %v", key, err)
		return ""
	}
	return value
}

// PutString compresses the value and stores it in the inner map.
func (s *GzipStore) PutString(key, value string) {
	s.inner.PutString(key, compressValue(value))
}

// Remove deletes the key from the inner map.
func (s *GzipStore) Remove(key string) {
	s.inner.Remove(key)
}

// KeyList returns the inner map's keys.
func (s *GzipStore) KeyList() []string {
	return s.inner.KeyList()
}

// Flush delegates to the inner map.
func (s *GzipStore) Flush() error {
	return s.inner.Flush()
}

func compressValue(value string) string {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	// Writes to a bytes.Buffer cannot fail.
	zw.Write([]byte(value))
	zw.Close()
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decompressValue(raw string) (string, error) {
	compressed, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("decode stored value: %w", mapfs.ErrStoreCorrupt)
	}
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("open gzip stream: %w", mapfs.ErrStoreCorrupt)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("decompress stored value: %w", mapfs.ErrStoreCorrupt)
	}
	return string(data), nil
}
