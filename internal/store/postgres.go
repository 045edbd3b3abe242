package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mapfs-io/mapfs/internal/retry"
	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// Table holding the flat namespace: one row per key.
const (
	createEntriesTableSQL = `CREATE TABLE IF NOT EXISTS mapfs_entries (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	selectEntriesSQL = `SELECT key, value FROM mapfs_entries`
	upsertEntrySQL   = `INSERT INTO mapfs_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	deleteEntrySQL = `DELETE FROM mapfs_entries WHERE key = $1`
)

// PostgresStore keeps the map in a single key-value table. The full table is
// loaded when the store is opened; Flush writes the accumulated delta
// (upserts and deletes) in one transaction, retried on transient transport
// errors.
type PostgresStore struct {
	snapshot
	pool    *pgxpool.Pool
	logger  mapfs.Logger
	flusher *retry.Executor
}

// OpenPostgresStore connects to connString, ensures the entries table exists
// and loads the current key set.
func OpenPostgresStore(ctx context.Context, connString string, logger mapfs.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mapfs.ErrConnectionFailed, err)
	}

	if _, err := pool.Exec(ctx, createEntriesTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create entries table: %w", err)
	}

	s := &PostgresStore{
		snapshot: newSnapshot(),
		pool:     pool,
		logger:   logger,
	}
	s.flusher = retry.NewExecutor(
		retry.NewTransportErrorClassifier(),
		retry.NewExponentialBackoff(3),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Verbose("retrying flush (attempt %d) in %s: %v", attempt+1, delay, err)
	})

	if err := s.load(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) load(ctx context.Context) error {
	rows, err := s.pool.Query(ctx, selectEntriesSQL)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scan entry row: %w", err)
		}
		entries[key] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read entry rows: %w", err)
	}
	s.seed(entries)
	return nil
}

// Flush persists pending changes with a background context.
func (s *PostgresStore) Flush() error {
	return s.FlushContext(context.Background())
}

// FlushContext persists pending changes, honoring ctx for cancellation.
func (s *PostgresStore) FlushContext(ctx context.Context) error {
	written, removed := s.changes()
	if len(written) == 0 && len(removed) == 0 {
		return nil
	}

	err := s.flusher.Execute(ctx, func(ctx context.Context) error {
		return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
			for _, key := range removed {
				if _, err := tx.Exec(ctx, deleteEntrySQL, key); err != nil {
					return fmt.Errorf("delete entry %s: %w", key, err)
				}
			}
			for key, value := range written {
				if _, err := tx.Exec(ctx, upsertEntrySQL, key, value); err != nil {
					return fmt.Errorf("upsert entry %s: %w", key, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", mapfs.ErrFlushFailed, err)
	}

	s.clearChanges()
	return nil
}

// Close releases the connection pool. Pending unflushed changes are lost.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
