package dot_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galaxygen/dot"
	"github.com/katalvlaran/galaxygen/galaxy"
)

func fixture() galaxy.Snapshot {
	return galaxy.Snapshot{
		Clusters: []galaxy.ClusterView{
			{ID: 0, Level: 0, Label: "C0_LVL0", NodeIDs: []int{0, 1}},
			{ID: 1, Level: 1, Label: "C1_LVL1", NodeIDs: []int{2}},
		},
		Edges: []galaxy.Edge{{A: 0, B: 1}, {A: 1, B: 2}},
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, dot.Encode(&buf, fixture(), dot.WithLayout("fdp")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph"), out)
	assert.Contains(t, out, "galaxy")
	assert.Contains(t, out, "layout")
	assert.Contains(t, out, "fdp")
	assert.Equal(t, 2, strings.Count(out, "subgraph"))
	assert.Contains(t, out, "cluster_")
	assert.Contains(t, out, `label="C0_LVL0"`)
	assert.Contains(t, out, `label="C1_LVL1"`)
	assert.Equal(t, 2, strings.Count(out, "--"), "one statement per link")
}

// TestBuild checks the in-memory graph before it is written.
func TestBuild(t *testing.T) {
	t.Parallel()

	g, err := dot.Build(fixture(), dot.WithName("sector"))
	require.NoError(t, err)
	out := g.String()
	assert.Contains(t, out, "sector")
	assert.Equal(t, 2, strings.Count(out, "cluster_"))
	assert.Equal(t, 2, strings.Count(out, "--"))
}

func TestEncode_Name(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, dot.Encode(&buf, galaxy.Snapshot{}, dot.WithName("my galaxy")))
	assert.Contains(t, buf.String(), "my galaxy")
	assert.NotContains(t, buf.String(), "subgraph")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, dot.Encode(nil, fixture()), dot.ErrNilWriter)
	require.Error(t, dot.Encode(failingWriter{}, fixture()))

	orphan := fixture()
	orphan.Edges = append(orphan.Edges, galaxy.Edge{A: 2, B: 9})
	require.ErrorIs(t, dot.Encode(&bytes.Buffer{}, orphan), dot.ErrUnknownNode)
}

// TestEncode_GeneratedIsStable checks byte-identical DOT for a fixed seed.
func TestEncode_GeneratedIsStable(t *testing.T) {
	t.Parallel()

	render := func() []byte {
		g, err := galaxy.Generate(galaxy.Spec{
			0: {Clusters: 2, NodesPerCluster: 6, CumProb: []float64{0.8, 1}},
		}, galaxy.WithSeed(4))
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, dot.Encode(&buf, g.Snapshot()))
		return buf.Bytes()
	}
	assert.Equal(t, render(), render())
}
