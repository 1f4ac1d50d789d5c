// Package store persists generated galaxies in a SQLite database so runs can
// be listed, reloaded and compared later. It uses the pure-Go modernc.org
// driver; no cgo is required.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/galaxygen/galaxy"
	"github.com/katalvlaran/galaxygen/logger"
)

// ErrRunNotFound indicates an unknown run ID.
var ErrRunNotFound = errors.New("store: run not found")

const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Store wraps a SQLite connection.
type Store struct {
	sql *sql.DB
	log *zap.Logger
}

// Run is one persisted generation.
type Run struct {
	ID        int64
	Name      string
	Seed      int64
	Spec      galaxy.Spec
	CreatedAt time.Time
	Snapshot  galaxy.Snapshot
}

// RunSummary is a Run without its graph.
type RunSummary struct {
	ID        int64
	Name      string
	Seed      int64
	CreatedAt time.Time
	Nodes     int
	Edges     int
}

// Open opens (or creates) the database at path and applies migrations.
// A nil logger is replaced with zap.NewNop().
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String(logger.FieldComponent, "store"))
	db, err := sql.Open("sqlite", path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}
	s := &Store{sql: db, log: log}
	if err = s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate %s: %w", path, err)
	}
	log.Debug("store opened", zap.String(logger.FieldFile, path))

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.sql.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return fmt.Errorf("schema_version: %w", err)
	}
	version := 0
	err := s.sql.QueryRowContext(ctx,
		"SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		_, err = s.sql.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS runs (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				name       TEXT    NOT NULL,
				seed       INTEGER NOT NULL,
				spec       TEXT    NOT NULL,
				created_at TEXT    NOT NULL,
				nodes      INTEGER NOT NULL,
				edges      INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS clusters (
				run_id     INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
				cluster_id INTEGER NOT NULL,
				level      INTEGER NOT NULL,
				label      TEXT    NOT NULL,
				PRIMARY KEY (run_id, cluster_id)
			);

			CREATE TABLE IF NOT EXISTS nodes (
				run_id     INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
				node_id    INTEGER NOT NULL,
				cluster_id INTEGER NOT NULL,
				PRIMARY KEY (run_id, node_id)
			);

			CREATE TABLE IF NOT EXISTS edges (
				run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
				a      INTEGER NOT NULL,
				b      INTEGER NOT NULL,
				PRIMARY KEY (run_id, a, b),
				CHECK (a < b)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		s.log.Debug("applied migration", zap.Int("version", 1))
	}

	return nil
}
