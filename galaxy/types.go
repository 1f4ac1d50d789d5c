// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// types.go - Node, Cluster, EdgeSet and Galaxy.
//
// Back-references are identifiers, not pointers: a Node stores its ClusterID
// and a Cluster stores member node IDs. The Galaxy owns both tables and
// resolves IDs with O(1) slice lookups.

package galaxy

import (
	"strconv"
)

// EdgeSet is a deduplicating set of neighbor node IDs that remembers
// insertion order. Adding an ID that is already present is a no-op.
// The zero value is an empty set ready to use.
type EdgeSet struct {
	order []int
	index map[int]struct{}
}

// newEdgeSet returns an empty set with room for capHint IDs.
func newEdgeSet(capHint int) EdgeSet {
	return EdgeSet{
		order: make([]int, 0, capHint),
		index: make(map[int]struct{}, capHint),
	}
}

// Add inserts id and reports whether it was new.
// Complexity: O(1) amortized.
func (s *EdgeSet) Add(id int) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[int]struct{})
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)

	return true
}

// Has reports whether id is in the set.
func (s *EdgeSet) Has(id int) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of distinct IDs.
func (s *EdgeSet) Len() int { return len(s.order) }

// IDs returns a copy of the IDs in insertion order.
func (s *EdgeSet) IDs() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)

	return out
}

// Node is a system: a vertex owned by exactly one cluster.
type Node struct {
	// ID is unique within the galaxy and assigned in creation order.
	ID int
	// ClusterID never changes after creation.
	ClusterID int

	edges EdgeSet
}

// Degree returns the number of distinct neighbors.
func (n *Node) Degree() int { return n.edges.Len() }

// Neighbors returns neighbor IDs in the order the links were recorded.
func (n *Node) Neighbors() []int { return n.edges.IDs() }

// HasEdge reports whether n is linked to id.
func (n *Node) HasEdge(id int) bool { return n.edges.Has(id) }

// Cluster is a group of nodes at one hierarchy level sharing a
// cumulative probability table.
type Cluster struct {
	// ID is unique across all levels.
	ID int
	// Level is the hierarchy level (≥ 0).
	Level int
	// NodeCount is the configured population.
	NodeCount int
	// CumProb is the level's cumulative table; shared, do not mutate.
	CumProb []float64

	nodes []int
}

// NodeIDs returns a copy of the member IDs in creation order.
func (c *Cluster) NodeIDs() []int {
	out := make([]int, len(c.nodes))
	copy(out, c.nodes)

	return out
}

// Label renders the cluster as "C<id>_LVL<level>".
func (c *Cluster) Label() string {
	return "C" + strconv.Itoa(c.ID) + "_LVL" + strconv.Itoa(c.Level)
}

// String implements fmt.Stringer.
func (c *Cluster) String() string { return c.Label() }

// Galaxy owns every cluster and node of one generated graph.
//
// The set of levels is fixed by New. Clusters and nodes are indexed by ID.
type Galaxy struct {
	cfg galaxyConfig

	levels   []int         // ascending
	byLevel  map[int][]int // level → cluster IDs in creation order
	clusters []*Cluster    // cluster ID → cluster
	nodes    []*Node       // node ID → node
	maxLevel int

	populated bool
	scratch   []int // candidate buffer reused by SelectTarget
}
