// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// sampler.go - per-node target degree sampling.

package galaxy

import "math/rand"

// DegreeSampler draws the number of links a node wants.
type DegreeSampler func(rng *rand.Rand) int

// Degree sampling constants. The chain is an early-exit cascade with a fresh
// draw per step, not a closed-form distribution.
const (
	// MinDegree is the smallest degree SampleDegree returns.
	MinDegree = 1
	// MaxDegree is the hard ceiling returned when the cascade never triggers.
	MaxDegree = 10

	pDegreeOne   = 0.1 // P(step 1 triggers)
	pDegreeTwo   = 0.4 // P(step 2 triggers)
	pDegreeChain = 0.7 // P(each step 3..9 triggers)

	firstChainDegree = 3
	lastChainDegree  = 9
)

// SampleDegree returns a target degree in [MinDegree, MaxDegree].
//
// Each step draws an independent uniform value:
//
//	draw < 0.1            → 1
//	draw < 0.4            → 2
//	for i in 3..9: draw < 0.7 → i
//	otherwise             → 10
//
// So P(1)=0.1, P(2)=0.9·0.4, P(3)=0.9·0.6·0.7, and so on.
//
// Complexity: O(1), at most 9 draws.
func SampleDegree(rng *rand.Rand) int {
	if rng.Float64() < pDegreeOne {
		return 1
	}
	if rng.Float64() < pDegreeTwo {
		return 2
	}
	for i := firstChainDegree; i <= lastChainDegree; i++ {
		if rng.Float64() < pDegreeChain {
			return i
		}
	}

	return MaxDegree
}
