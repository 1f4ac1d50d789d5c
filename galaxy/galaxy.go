// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// galaxy.go - construction, population and edge creation.
//
// Determinism:
//   - Clusters are created in ascending level order, then count order.
//   - Nodes are created cluster by cluster in that same order.
//   - Edges are created by walking nodes in ID order exactly once.

package galaxy

import (
	"fmt"

	"go.uber.org/zap"
)

// New validates spec, resolves opts and creates every cluster. No node
// exists yet; call CreateNodes and CreateEdges, or use Generate.
//
// Errors: any Validate sentinel, or ErrNeedRandSource.
// Complexity: O(L·K + C) for L levels, tables of length K and C clusters.
func New(spec Spec, opts ...Option) (*Galaxy, error) {
	if err := Validate(spec); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	cfg := newGalaxyConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNeedRandSource)
	}

	g := &Galaxy{
		cfg:     cfg,
		levels:  spec.Levels(),
		byLevel: make(map[int][]int, len(spec)),
	}
	g.maxLevel = g.levels[len(g.levels)-1]
	g.createClusters(spec)

	g.cfg.log.Debug("clusters created",
		zap.Int("levels", len(g.levels)),
		zap.Int("clusters", len(g.clusters)),
		zap.Int("max_level", g.maxLevel))

	return g, nil
}

// Generate runs New, CreateNodes and CreateEdges.
func Generate(spec Spec, opts ...Option) (*Galaxy, error) {
	g, err := New(spec, opts...)
	if err != nil {
		return nil, err
	}
	if err = g.CreateNodes(); err != nil {
		return nil, err
	}
	if err = g.CreateEdges(); err != nil {
		return nil, err
	}

	return g, nil
}

// createClusters instantiates spec[lvl].Clusters clusters per level with
// galaxy-wide IDs. Clusters of one level share a single copy of the table.
func (g *Galaxy) createClusters(spec Spec) {
	var id int
	for _, lvl := range g.levels {
		ls := spec[lvl]
		probs := make([]float64, len(ls.CumProb))
		copy(probs, ls.CumProb)

		ids := make([]int, 0, ls.Clusters)
		for i := 0; i < ls.Clusters; i++ {
			g.clusters = append(g.clusters, &Cluster{
				ID:        id,
				Level:     lvl,
				NodeCount: ls.NodesPerCluster,
				CumProb:   probs,
				nodes:     make([]int, 0, ls.NodesPerCluster),
			})
			ids = append(ids, id)
			id++
		}
		g.byLevel[lvl] = ids
	}
}

// CreateNodes populates every cluster with its configured node count.
// Node IDs are global and follow cluster order.
//
// Errors: ErrAlreadyPopulated on a second call.
// Complexity: O(N) for N nodes.
func (g *Galaxy) CreateNodes() error {
	if g.populated {
		return fmt.Errorf("%s: %w", methodCreateNodes, ErrAlreadyPopulated)
	}

	var id int
	for _, lvl := range g.levels {
		for _, cid := range g.byLevel[lvl] {
			c := g.clusters[cid]
			for i := 0; i < c.NodeCount; i++ {
				g.nodes = append(g.nodes, &Node{
					ID:        id,
					ClusterID: c.ID,
					edges:     newEdgeSet(MaxDegree),
				})
				c.nodes = append(c.nodes, id)
				id++
			}
		}
	}
	g.populated = true

	g.cfg.log.Debug("nodes created", zap.Int("nodes", len(g.nodes)))

	return nil
}

// CreateEdges calls EnsureEdges once for every node in ID order.
// A failure aborts the run; the partial graph must be discarded.
//
// Errors: ErrNotPopulated, or anything EnsureEdges returns.
// Complexity: O(N·MaxDegree·S) where S is the largest candidate set.
func (g *Galaxy) CreateEdges() error {
	if !g.populated {
		return fmt.Errorf("%s: %w", methodCreateEdges, ErrNotPopulated)
	}
	for _, n := range g.nodes {
		if err := g.EnsureEdges(n.ID); err != nil {
			return fmt.Errorf("%s: %w", methodCreateEdges, err)
		}
	}

	g.cfg.log.Debug("edges created", zap.Int("edges", g.EdgeCount()))

	return nil
}

// MaxLevel returns the largest configured level.
func (g *Galaxy) MaxLevel() int { return g.maxLevel }

// Levels returns the configured levels in ascending order.
func (g *Galaxy) Levels() []int {
	out := make([]int, len(g.levels))
	copy(out, g.levels)

	return out
}

// Clusters returns the clusters of lvl in creation order, or nil.
func (g *Galaxy) Clusters(lvl int) []*Cluster {
	ids := g.byLevel[lvl]
	if len(ids) == 0 {
		return nil
	}
	out := make([]*Cluster, len(ids))
	for i, id := range ids {
		out[i] = g.clusters[id]
	}

	return out
}

// AllClusters returns every cluster in ID order.
func (g *Galaxy) AllClusters() []*Cluster {
	out := make([]*Cluster, len(g.clusters))
	copy(out, g.clusters)

	return out
}

// Cluster returns the cluster with the given ID, or nil.
func (g *Galaxy) Cluster(id int) *Cluster {
	if id < 0 || id >= len(g.clusters) {
		return nil
	}

	return g.clusters[id]
}

// Node returns the node with the given ID.
func (g *Galaxy) Node(id int) (*Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Nodes returns every node in ID order.
func (g *Galaxy) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of created nodes.
func (g *Galaxy) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected links.
func (g *Galaxy) EdgeCount() int {
	var sum int
	for _, n := range g.nodes {
		sum += n.Degree()
	}

	return sum / 2
}
