// SPDX-License-Identifier: MIT
// Package: galaxygen/topology
//
// topology.go - snapshot analysis.
//
// Determinism:
//   - Components are discovered from the lowest unvisited node ID and list
//     their members in ascending order; components are ordered by first member.
//   - LevelPairs keys are normalized so Low <= High.

package topology

import (
	"sort"

	"github.com/katalvlaran/galaxygen/galaxy"
)

// LevelPair is an unordered pair of hierarchy levels with Low <= High.
type LevelPair struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Report describes the shape of one galaxy.
type Report struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`

	MinDegree  int         `json:"min_degree"`
	MaxDegree  int         `json:"max_degree"`
	MeanDegree float64     `json:"mean_degree"`
	Histogram  map[int]int `json:"histogram"` // degree → node count

	Isolated   []int   `json:"isolated"`
	Components [][]int `json:"components"`

	LocalEdges int               `json:"local_edges"`
	CrossEdges int               `json:"cross_edges"`
	LevelPairs map[LevelPair]int `json:"-"`
}

// Connected reports whether the galaxy forms a single component.
func (r Report) Connected() bool { return len(r.Components) <= 1 }

// Analyze computes a Report for s.
// Complexity: O(N·log N + E) for N nodes and E links.
func Analyze(s galaxy.Snapshot) Report {
	clusterOf := s.ClusterOf()
	levelOf := make(map[int]int, len(s.Clusters))
	ids := make([]int, 0, len(clusterOf))
	for _, c := range s.Clusters {
		levelOf[c.ID] = c.Level
		ids = append(ids, c.NodeIDs...)
	}
	sort.Ints(ids)

	adj := make(map[int][]int, len(ids))
	r := Report{
		Nodes:      len(ids),
		Edges:      len(s.Edges),
		Histogram:  make(map[int]int),
		LevelPairs: make(map[LevelPair]int),
	}
	for _, e := range s.Edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)

		ca, cb := clusterOf[e.A], clusterOf[e.B]
		if ca == cb {
			r.LocalEdges++
		} else {
			r.CrossEdges++
		}
		r.LevelPairs[pairOf(levelOf[ca], levelOf[cb])]++
	}

	degreeStats(&r, ids, adj)
	r.Components = components(ids, adj)

	return r
}

// degreeStats fills the degree fields and the isolated list.
func degreeStats(r *Report, ids []int, adj map[int][]int) {
	if len(ids) == 0 {
		return
	}
	r.MinDegree = len(adj[ids[0]])
	var sum int
	for _, id := range ids {
		d := len(adj[id])
		sum += d
		r.Histogram[d]++
		if d < r.MinDegree {
			r.MinDegree = d
		}
		if d > r.MaxDegree {
			r.MaxDegree = d
		}
		if d == 0 {
			r.Isolated = append(r.Isolated, id)
		}
	}
	r.MeanDegree = float64(sum) / float64(len(ids))
}

// components runs a queue-based sweep from every unvisited node.
func components(ids []int, adj map[int][]int) [][]int {
	seen := make(map[int]bool, len(ids))
	var comps [][]int

	for _, start := range ids {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

func pairOf(a, b int) LevelPair {
	if a > b {
		a, b = b, a
	}
	return LevelPair{Low: a, High: b}
}
