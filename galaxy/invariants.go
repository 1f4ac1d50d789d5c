package galaxy

import "fmt"

// CheckInvariants verifies the structural guarantees of a generated galaxy:
//   - every node is listed by exactly its own cluster;
//   - populated clusters hold exactly NodeCount nodes;
//   - no node links to itself;
//   - links are symmetric (a lists b iff b lists a).
//
// It returns the first violation wrapped with ErrInvariant.
// Complexity: O(N + E).
func (g *Galaxy) CheckInvariants() error {
	owner := make([]int, len(g.nodes))
	for i := range owner {
		owner[i] = -1
	}
	for _, c := range g.clusters {
		if g.populated && len(c.nodes) != c.NodeCount {
			return fmt.Errorf("%s: cluster %s has %d nodes, want %d: %w",
				methodCheckInvariants, c.Label(), len(c.nodes), c.NodeCount, ErrInvariant)
		}
		for _, id := range c.nodes {
			if owner[id] != -1 {
				return fmt.Errorf("%s: node %d listed by clusters %d and %d: %w",
					methodCheckInvariants, id, owner[id], c.ID, ErrInvariant)
			}
			if g.nodes[id].ClusterID != c.ID {
				return fmt.Errorf("%s: node %d owned by %d but listed by %d: %w",
					methodCheckInvariants, id, g.nodes[id].ClusterID, c.ID, ErrInvariant)
			}
			owner[id] = c.ID
		}
	}

	for _, n := range g.nodes {
		if owner[n.ID] == -1 {
			return fmt.Errorf("%s: node %d has no cluster: %w", methodCheckInvariants, n.ID, ErrInvariant)
		}
		if n.HasEdge(n.ID) {
			return fmt.Errorf("%s: node %d links to itself: %w", methodCheckInvariants, n.ID, ErrInvariant)
		}
		for _, nb := range n.edges.order {
			if !g.nodes[nb].HasEdge(n.ID) {
				return fmt.Errorf("%s: link %d→%d has no reciprocal: %w",
					methodCheckInvariants, n.ID, nb, ErrInvariant)
			}
		}
	}

	return nil
}
