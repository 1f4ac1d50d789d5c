// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// select.go - locality-weighted target selection and per-node edge creation.
//
// Exclusion rule: a level slot excludes the origin's whole cluster only when
// that cluster sits on the targeted level. No other node is filtered, so a
// level slot may return a node that is already a neighbor.

package galaxy

import "fmt"

// SelectTarget picks a link partner for node fromID.
//
// One uniform draw p is compared with the origin cluster's cumulative table
// [t0, ..., tk]. p < t0 selects a sibling in the same cluster; otherwise the
// first i ≥ 1 with p < ti selects any node of a level i-1 cluster other than
// the origin's own. The partner is then drawn uniformly from the candidates.
// The result is never fromID.
//
// Errors: ErrNotPopulated, ErrNodeNotFound, ErrNoCandidates.
// Complexity: O(K + S) for table length K and candidate set size S.
func (g *Galaxy) SelectTarget(fromID int) (int, error) {
	if !g.populated {
		return 0, fmt.Errorf("%s: %w", methodSelectTarget, ErrNotPopulated)
	}
	from, err := g.Node(fromID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodSelectTarget, err)
	}
	origin := g.clusters[from.ClusterID]
	rng := g.cfg.rng

	p := rng.Float64()
	candidates := g.scratch[:0]

	if p < origin.CumProb[0] {
		for _, id := range origin.nodes {
			if id != from.ID {
				candidates = append(candidates, id)
			}
		}
	} else {
		for i := 1; i < len(origin.CumProb); i++ {
			if p >= origin.CumProb[i] {
				continue
			}
			for _, cid := range g.byLevel[i-1] {
				if cid == origin.ID {
					continue
				}
				candidates = append(candidates, g.clusters[cid].nodes...)
			}
			break
		}
	}
	g.scratch = candidates

	if len(candidates) == 0 {
		return 0, fmt.Errorf("%s: node %d (cluster %s, p=%.4f): %w",
			methodSelectTarget, from.ID, origin.Label(), p, ErrNoCandidates)
	}

	return candidates[rng.Intn(len(candidates))], nil
}

// EnsureEdges samples a target degree for nodeID and requests
// (target - current degree) partners from SelectTarget, linking each one
// on both endpoints immediately. Nothing happens when the node already has
// enough links.
//
// A partner that is already a neighbor is absorbed by the edge set, so the
// node can finish below its sampled degree. This is intended.
//
// Errors: ErrNotPopulated, ErrNodeNotFound, or a SelectTarget failure.
// Complexity: O(D·(K+S)) for sampled degree D.
func (g *Galaxy) EnsureEdges(nodeID int) error {
	if !g.populated {
		return fmt.Errorf("%s: %w", methodEnsureEdges, ErrNotPopulated)
	}
	n, err := g.Node(nodeID)
	if err != nil {
		return fmt.Errorf("%s: %w", methodEnsureEdges, err)
	}

	remaining := g.cfg.sampler(g.cfg.rng) - n.Degree()
	for i := 0; i < remaining; i++ {
		to, err := g.SelectTarget(n.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", methodEnsureEdges, err)
		}
		g.link(n, g.nodes[to])
	}

	return nil
}

// link records the undirected edge a-b on both endpoints.
func (g *Galaxy) link(a, b *Node) {
	b.edges.Add(a.ID)
	a.edges.Add(b.ID)
}
