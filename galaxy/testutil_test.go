package galaxy_test

import (
	"math/rand"

	"github.com/katalvlaran/galaxygen/galaxy"
)

// scriptedSource replays fixed uniform values through rand.Rand.Float64.
// Float64 divides Int63 by 2^63, so v*2^63 round-trips to v for the
// coarse values used in tests.
type scriptedSource struct {
	values []float64
	pos    int
}

func (s *scriptedSource) Int63() int64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return int64(v * (1 << 63))
}

func (s *scriptedSource) Seed(int64) {}

// scripted returns an RNG and its source so tests can count draws.
func scripted(values ...float64) (*rand.Rand, *scriptedSource) {
	src := &scriptedSource{values: values}
	return rand.New(src), src
}

// defaultSpec mirrors levels.Default: one core cluster and six regions.
func defaultSpec() galaxy.Spec {
	return galaxy.Spec{
		0: {Clusters: 1, NodesPerCluster: 20, CumProb: []float64{1}},
		1: {Clusters: 6, NodesPerCluster: 10, CumProb: []float64{0.70, 0.90, 1}},
	}
}

// twoLevelSpec is the small scenario used for locality frequencies.
func twoLevelSpec() galaxy.Spec {
	return galaxy.Spec{
		0: {Clusters: 1, NodesPerCluster: 5, CumProb: []float64{1}},
		1: {Clusters: 2, NodesPerCluster: 5, CumProb: []float64{0.7, 0.9, 1}},
	}
}

// constDegree returns a sampler that always wants d links.
func constDegree(d int) galaxy.DegreeSampler {
	return func(*rand.Rand) int { return d }
}
