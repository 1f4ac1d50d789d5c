package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/galaxygen/galaxy"
	"github.com/katalvlaran/galaxygen/store"
)

// StoreSuite exercises the SQLite round trip against a temp database.
type StoreSuite struct {
	suite.Suite
	ctx context.Context
	db  *store.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	db, err := store.Open(s.ctx, filepath.Join(s.T().TempDir(), "galaxy.db"), nil)
	require.NoError(s.T(), err)
	s.db = db
}

func (s *StoreSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Close())
}

func (s *StoreSuite) generate(seed int64) (galaxy.Spec, galaxy.Snapshot) {
	spec := galaxy.Spec{
		0: {Clusters: 1, NodesPerCluster: 5, CumProb: []float64{1}},
		1: {Clusters: 2, NodesPerCluster: 5, CumProb: []float64{0.7, 0.9, 1}},
	}
	g, err := galaxy.Generate(spec, galaxy.WithSeed(seed))
	require.NoError(s.T(), err)
	return spec, g.Snapshot()
}

// TestRoundTrip checks that a saved run reloads identically.
func (s *StoreSuite) TestRoundTrip() {
	spec, snap := s.generate(21)
	created := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	id, err := s.db.SaveRun(s.ctx, store.Run{
		Name:      "small",
		Seed:      21,
		Spec:      spec,
		CreatedAt: created,
		Snapshot:  snap,
	})
	require.NoError(s.T(), err)
	require.Positive(s.T(), id)

	got, err := s.db.LoadRun(s.ctx, id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), id, got.ID)
	require.Equal(s.T(), "small", got.Name)
	require.Equal(s.T(), int64(21), got.Seed)
	require.Equal(s.T(), spec, got.Spec)
	require.True(s.T(), created.Equal(got.CreatedAt))
	require.Equal(s.T(), snap, got.Snapshot)
}

// TestListRuns checks newest-first ordering and counts.
func (s *StoreSuite) TestListRuns() {
	for seed := int64(1); seed <= 3; seed++ {
		spec, snap := s.generate(seed)
		_, err := s.db.SaveRun(s.ctx, store.Run{Name: "run", Seed: seed, Spec: spec, Snapshot: snap})
		require.NoError(s.T(), err)
	}

	runs, err := s.db.ListRuns(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), runs, 3)
	require.Equal(s.T(), int64(3), runs[0].Seed)
	require.Equal(s.T(), int64(1), runs[2].Seed)
	for _, r := range runs {
		require.Equal(s.T(), 15, r.Nodes)
		require.False(s.T(), r.CreatedAt.IsZero())
	}
}

// TestLoadRun_NotFound checks the sentinel.
func (s *StoreSuite) TestLoadRun_NotFound() {
	_, err := s.db.LoadRun(s.ctx, 404)
	require.ErrorIs(s.T(), err, store.ErrRunNotFound)
}

// TestReopen checks that migrations are idempotent.
func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "galaxy.db")

	db, err := store.Open(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Open(ctx, path, nil)
	require.NoError(t, err)
	defer db.Close()

	runs, err := db.ListRuns(ctx)
	require.NoError(t, err)
	require.Empty(t, runs)
}

// TestOpen_UnreadableSchemaVersion checks that a schema_version row that
// cannot be read fails Open instead of re-running migrations.
func TestOpen_UnreadableSchemaVersion(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "galaxy.db")

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.ExecContext(ctx, `
		CREATE TABLE schema_version (version TEXT);
		INSERT INTO schema_version (version) VALUES ('not-a-number');
	`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := store.Open(ctx, path, nil)
	require.Error(t, err)
	require.Nil(t, db)
	require.Contains(t, err.Error(), "read schema version")
}
