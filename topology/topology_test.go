package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galaxygen/galaxy"
	"github.com/katalvlaran/galaxygen/topology"
)

// fixture: cluster 0 (level 0) = {0,1,2}, cluster 1 (level 1) = {3,4},
// cluster 2 (level 1) = {5,6}. Node 6 is isolated.
func fixture() galaxy.Snapshot {
	return galaxy.Snapshot{
		Clusters: []galaxy.ClusterView{
			{ID: 0, Level: 0, Label: "C0_LVL0", NodeIDs: []int{0, 1, 2}},
			{ID: 1, Level: 1, Label: "C1_LVL1", NodeIDs: []int{3, 4}},
			{ID: 2, Level: 1, Label: "C2_LVL1", NodeIDs: []int{5, 6}},
		},
		Edges: []galaxy.Edge{
			{A: 0, B: 1}, // local, level 0
			{A: 1, B: 2}, // local, level 0
			{A: 2, B: 3}, // cross, 0–1
			{A: 3, B: 4}, // local, level 1
			{A: 4, B: 5}, // cross, 1–1
		},
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	r := topology.Analyze(fixture())

	assert.Equal(t, 7, r.Nodes)
	assert.Equal(t, 5, r.Edges)
	assert.Equal(t, 0, r.MinDegree)
	assert.Equal(t, 2, r.MaxDegree)
	assert.InDelta(t, 10.0/7.0, r.MeanDegree, 1e-9)
	assert.Equal(t, map[int]int{0: 1, 1: 2, 2: 4}, r.Histogram)

	assert.Equal(t, []int{6}, r.Isolated)
	require.Len(t, r.Components, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, r.Components[0])
	assert.Equal(t, []int{6}, r.Components[1])
	assert.False(t, r.Connected())

	assert.Equal(t, 3, r.LocalEdges)
	assert.Equal(t, 2, r.CrossEdges)
	assert.Equal(t, map[topology.LevelPair]int{
		{Low: 0, High: 0}: 2,
		{Low: 0, High: 1}: 1,
		{Low: 1, High: 1}: 2,
	}, r.LevelPairs)
}

func TestAnalyze_Empty(t *testing.T) {
	t.Parallel()

	r := topology.Analyze(galaxy.Snapshot{})
	assert.Zero(t, r.Nodes)
	assert.Empty(t, r.Components)
	assert.True(t, r.Connected())
}

// TestAnalyze_GeneratedGalaxy cross-checks Analyze against the generator.
func TestAnalyze_GeneratedGalaxy(t *testing.T) {
	t.Parallel()

	spec := galaxy.Spec{0: {Clusters: 1, NodesPerCluster: 20, CumProb: []float64{1}}}
	g, err := galaxy.Generate(spec, galaxy.WithSeed(8))
	require.NoError(t, err)

	r := topology.Analyze(g.Snapshot())
	assert.Equal(t, 20, r.Nodes)
	assert.Equal(t, g.EdgeCount(), r.Edges)
	assert.Zero(t, r.CrossEdges, "a single cluster has no cross links")
	assert.Empty(t, r.Isolated, "every node asks for at least one link")

	var total int
	for _, comp := range r.Components {
		total += len(comp)
	}
	assert.Equal(t, 20, total)
	for _, n := range g.Nodes() {
		assert.GreaterOrEqual(t, r.MaxDegree, n.Degree())
	}
}
