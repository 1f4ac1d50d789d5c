// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// spec.go - level specification and up-front validation.
//
// Validation order per level (ascending level keys, first failure wins):
//   1. level >= 0                           (ErrInvalidLevel)
//   2. Clusters >= 1, NodesPerCluster >= 1  (ErrInvalidCount)
//   3. table non-empty, every ti in (0,1]   (ErrInvalidProbability)
//   4. ti non-decreasing                    (ErrNotCumulative)
//   5. last ti == 1.0                       (ErrBadTerminal)
//   6. every slot with positive mass has at least one candidate
//      for every node of the level          (ErrUnsatisfiableMass)

package galaxy

import (
	"fmt"
	"math"
	"sort"
)

// LevelSpec configures every cluster of one hierarchy level.
//
// CumProb is a cumulative table: CumProb[0] is the local threshold and
// CumProb[i] (i ≥ 1) closes the slot for links into level i-1.
type LevelSpec struct {
	Clusters        int       `json:"clusters" yaml:"clusters" toml:"clusters"`
	NodesPerCluster int       `json:"nodes_per_cluster" yaml:"nodes_per_cluster" toml:"nodes_per_cluster"`
	CumProb         []float64 `json:"cum_prob" yaml:"cum_prob" toml:"cum_prob"`
}

// Spec maps a hierarchy level to its configuration. Levels may be sparse.
type Spec map[int]LevelSpec

// Levels returns the level keys in ascending order.
func (s Spec) Levels() []int {
	lvls := make([]int, 0, len(s))
	for lvl := range s {
		lvls = append(lvls, lvl)
	}
	sort.Ints(lvls)

	return lvls
}

// TotalNodes returns Σ Clusters·NodesPerCluster.
func (s Spec) TotalNodes() int {
	var total int
	for _, ls := range s {
		total += ls.Clusters * ls.NodesPerCluster
	}

	return total
}

// Validate checks s against every configuration rule. A nil return guarantees
// that target selection never meets an empty candidate set.
// Complexity: O(L·K) for L levels and tables of length K.
func Validate(s Spec) error {
	if len(s) == 0 {
		return fmt.Errorf("%s: %w", methodValidate, ErrEmptySpec)
	}
	for _, lvl := range s.Levels() {
		if err := validateLevel(s, lvl); err != nil {
			return fmt.Errorf("%s: %w", methodValidate, err)
		}
	}

	return nil
}

// validateLevel checks one level: counts first, then its table, then whether
// every slot with positive mass has a candidate.
func validateLevel(s Spec, lvl int) error {
	ls := s[lvl]
	if lvl < 0 {
		return fmt.Errorf("level %d: %w", lvl, ErrInvalidLevel)
	}
	if ls.Clusters < 1 {
		return fmt.Errorf("level %d: clusters=%d: %w", lvl, ls.Clusters, ErrInvalidCount)
	}
	if ls.NodesPerCluster < 1 {
		return fmt.Errorf("level %d: nodes_per_cluster=%d: %w", lvl, ls.NodesPerCluster, ErrInvalidCount)
	}
	if err := validateTable(ls.CumProb); err != nil {
		return fmt.Errorf("level %d: %w", lvl, err)
	}

	// CumProb[0] > 0 always holds here, so the local slot needs a sibling.
	if ls.NodesPerCluster < 2 {
		return fmt.Errorf("level %d: local mass %.4g with a single-node cluster: %w",
			lvl, ls.CumProb[0], ErrUnsatisfiableMass)
	}

	// Level slots: the targeted level needs a cluster other than the origin's.
	for i := 1; i < len(ls.CumProb); i++ {
		mass := ls.CumProb[i] - ls.CumProb[i-1]
		if mass <= 0 {
			continue
		}
		target := i - 1
		eligible := s[target].Clusters
		if _, ok := s[target]; !ok {
			eligible = 0
		}
		if target == lvl {
			eligible--
		}
		if eligible < 1 {
			return fmt.Errorf("level %d: mass %.4g targets level %d with no other cluster: %w",
				lvl, mass, target, ErrUnsatisfiableMass)
		}
	}

	return nil
}

// validateTable checks that probs is a non-decreasing table in (0,1] ending in 1.0.
func validateTable(probs []float64) error {
	if len(probs) == 0 {
		return fmt.Errorf("empty cum_prob: %w", ErrInvalidProbability)
	}
	for i, p := range probs {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return fmt.Errorf("cum_prob[%d]=%v not in (0,1]: %w", i, p, ErrInvalidProbability)
		}
		if i > 0 && p < probs[i-1] {
			return fmt.Errorf("cum_prob[%d]=%v < cum_prob[%d]=%v: %w", i, p, i-1, probs[i-1], ErrNotCumulative)
		}
	}
	if last := probs[len(probs)-1]; last != 1.0 {
		return fmt.Errorf("cum_prob ends in %v: %w", last, ErrBadTerminal)
	}

	return nil
}
