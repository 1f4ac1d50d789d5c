// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// snapshot.go - immutable export of a generated galaxy for downstream
// consumers (DOT encoder, SQLite store, topology analysis).
//
// Each undirected link appears exactly once as a canonical (min,max) pair.
// Export never mutates the galaxy.

package galaxy

import "sort"

// Edge is an undirected link with A < B.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// ClusterView is the exported form of a cluster.
type ClusterView struct {
	ID      int    `json:"id"`
	Level   int    `json:"level"`
	Label   string `json:"label"`
	NodeIDs []int  `json:"node_ids"`
}

// Snapshot is a finished node/edge listing.
type Snapshot struct {
	Clusters []ClusterView `json:"clusters"`
	Edges    []Edge        `json:"edges"`
}

// NodeCount returns the number of nodes over all clusters.
func (s Snapshot) NodeCount() int {
	var n int
	for _, c := range s.Clusters {
		n += len(c.NodeIDs)
	}

	return n
}

// ClusterOf returns a node ID → cluster ID table.
func (s Snapshot) ClusterOf() map[int]int {
	out := make(map[int]int, s.NodeCount())
	for _, c := range s.Clusters {
		for _, id := range c.NodeIDs {
			out[id] = c.ID
		}
	}

	return out
}

// Snapshot exports clusters in ID order and links sorted by (A,B).
// Complexity: O(N + E·log E).
func (g *Galaxy) Snapshot() Snapshot {
	s := Snapshot{
		Clusters: make([]ClusterView, 0, len(g.clusters)),
		Edges:    make([]Edge, 0, g.EdgeCount()),
	}
	for _, c := range g.clusters {
		s.Clusters = append(s.Clusters, ClusterView{
			ID:      c.ID,
			Level:   c.Level,
			Label:   c.Label(),
			NodeIDs: c.NodeIDs(),
		})
	}
	for _, n := range g.nodes {
		for _, nb := range n.edges.order {
			// The reciprocal entry is skipped; it is emitted from the lower ID.
			if nb > n.ID {
				s.Edges = append(s.Edges, Edge{A: n.ID, B: nb})
			}
		}
	}
	sort.Slice(s.Edges, func(i, j int) bool {
		if s.Edges[i].A != s.Edges[j].A {
			return s.Edges[i].A < s.Edges[j].A
		}
		return s.Edges[i].B < s.Edges[j].B
	})

	return s
}
