package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/galaxygen/galaxy"
	"github.com/katalvlaran/galaxygen/logger"
)

// SaveRun stores r in one transaction and returns the new run ID.
// A zero CreatedAt is replaced with the current UTC time.
func (s *Store) SaveRun(ctx context.Context, r Run) (int64, error) {
	spec, err := json.Marshal(r.Spec)
	if err != nil {
		return 0, fmt.Errorf("store: encode spec: %w", err)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (name, seed, spec, created_at, nodes, edges) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Name, r.Seed, string(spec), r.CreatedAt.Format(time.RFC3339Nano),
		r.Snapshot.NodeCount(), len(r.Snapshot.Edges))
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}

	if err = insertClusters(ctx, tx, id, r.Snapshot.Clusters); err != nil {
		return 0, err
	}
	if err = insertEdges(ctx, tx, id, r.Snapshot.Edges); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}

	s.log.Debug("run saved",
		zap.Int64(logger.FieldRunID, id),
		zap.Int(logger.FieldNodes, r.Snapshot.NodeCount()),
		zap.Int(logger.FieldEdges, len(r.Snapshot.Edges)))

	return id, nil
}

func insertClusters(ctx context.Context, tx *sql.Tx, runID int64, clusters []galaxy.ClusterView) error {
	cStmt, err := tx.PrepareContext(ctx, `INSERT INTO clusters (run_id, cluster_id, level, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare clusters: %w", err)
	}
	defer cStmt.Close()
	nStmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes (run_id, node_id, cluster_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare nodes: %w", err)
	}
	defer nStmt.Close()

	for _, c := range clusters {
		if _, err = cStmt.ExecContext(ctx, runID, c.ID, c.Level, c.Label); err != nil {
			return fmt.Errorf("store: insert cluster %d: %w", c.ID, err)
		}
		for _, id := range c.NodeIDs {
			if _, err = nStmt.ExecContext(ctx, runID, id, c.ID); err != nil {
				return fmt.Errorf("store: insert node %d: %w", id, err)
			}
		}
	}

	return nil
}

func insertEdges(ctx context.Context, tx *sql.Tx, runID int64, edges []galaxy.Edge) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO edges (run_id, a, b) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare edges: %w", err)
	}
	defer stmt.Close()

	for _, e := range edges {
		if _, err = stmt.ExecContext(ctx, runID, e.A, e.B); err != nil {
			return fmt.Errorf("store: insert edge %d-%d: %w", e.A, e.B, err)
		}
	}

	return nil
}

// LoadRun reads run id back. Clusters and their nodes come back in ID order
// and edges sorted by (A,B), matching galaxy.Snapshot.
func (s *Store) LoadRun(ctx context.Context, id int64) (Run, error) {
	var (
		r         Run
		spec      string
		createdAt string
	)
	err := s.sql.QueryRowContext(ctx,
		`SELECT id, name, seed, spec, created_at FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &r.Seed, &spec, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("store: run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: load run %d: %w", id, err)
	}
	if err = json.Unmarshal([]byte(spec), &r.Spec); err != nil {
		return Run{}, fmt.Errorf("store: decode spec of run %d: %w", id, err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Run{}, fmt.Errorf("store: decode created_at of run %d: %w", id, err)
	}

	if r.Snapshot.Clusters, err = s.loadClusters(ctx, id); err != nil {
		return Run{}, err
	}
	if r.Snapshot.Edges, err = s.loadEdges(ctx, id); err != nil {
		return Run{}, err
	}

	return r, nil
}

func (s *Store) loadClusters(ctx context.Context, runID int64) ([]galaxy.ClusterView, error) {
	rows, err := s.sql.QueryContext(ctx,
		`SELECT cluster_id, level, label FROM clusters WHERE run_id = ? ORDER BY cluster_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query clusters: %w", err)
	}
	defer rows.Close()

	clusters := make([]galaxy.ClusterView, 0)
	index := make(map[int]int)
	for rows.Next() {
		var c galaxy.ClusterView
		if err = rows.Scan(&c.ID, &c.Level, &c.Label); err != nil {
			return nil, fmt.Errorf("store: scan cluster: %w", err)
		}
		c.NodeIDs = make([]int, 0)
		index[c.ID] = len(clusters)
		clusters = append(clusters, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate clusters: %w", err)
	}

	nodeRows, err := s.sql.QueryContext(ctx,
		`SELECT node_id, cluster_id FROM nodes WHERE run_id = ? ORDER BY node_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query nodes: %w", err)
	}
	defer nodeRows.Close()

	for nodeRows.Next() {
		var nodeID, clusterID int
		if err = nodeRows.Scan(&nodeID, &clusterID); err != nil {
			return nil, fmt.Errorf("store: scan node: %w", err)
		}
		i, ok := index[clusterID]
		if !ok {
			return nil, fmt.Errorf("store: node %d references unknown cluster %d", nodeID, clusterID)
		}
		clusters[i].NodeIDs = append(clusters[i].NodeIDs, nodeID)
	}
	if err = nodeRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate nodes: %w", err)
	}

	return clusters, nil
}

func (s *Store) loadEdges(ctx context.Context, runID int64) ([]galaxy.Edge, error) {
	rows, err := s.sql.QueryContext(ctx,
		`SELECT a, b FROM edges WHERE run_id = ? ORDER BY a, b`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query edges: %w", err)
	}
	defer rows.Close()

	edges := make([]galaxy.Edge, 0)
	for rows.Next() {
		var e galaxy.Edge
		if err = rows.Scan(&e.A, &e.B); err != nil {
			return nil, fmt.Errorf("store: scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate edges: %w", err)
	}

	return edges, nil
}

// ListRuns returns every run, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.sql.QueryContext(ctx,
		`SELECT id, name, seed, created_at, nodes, edges FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			r         RunSummary
			createdAt string
		)
		if err = rows.Scan(&r.ID, &r.Name, &r.Seed, &createdAt, &r.Nodes, &r.Edges); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("store: decode created_at of run %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}

	return out, nil
}
