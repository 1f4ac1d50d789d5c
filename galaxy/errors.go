// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// errors.go - sentinel errors for the galaxy package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached at the failure site with %w and a method prefix.
//   - Algorithms never panic. Option constructors (WithX) panic on nonsense.

package galaxy

import "errors"

// Configuration errors. All of them are reported by Validate and New before
// any cluster, node or edge exists.
var (
	// ErrEmptySpec indicates a Spec without any level.
	ErrEmptySpec = errors.New("galaxy: empty level spec")

	// ErrInvalidLevel indicates a negative hierarchy level key.
	ErrInvalidLevel = errors.New("galaxy: invalid level")

	// ErrInvalidCount indicates a cluster count or nodes-per-cluster below 1.
	ErrInvalidCount = errors.New("galaxy: count must be positive")

	// ErrInvalidProbability indicates an empty table or a threshold outside (0,1].
	ErrInvalidProbability = errors.New("galaxy: probability out of range")

	// ErrNotCumulative indicates a decreasing cumulative probability table.
	ErrNotCumulative = errors.New("galaxy: probability table is not non-decreasing")

	// ErrBadTerminal indicates a table whose last threshold is not exactly 1.0.
	ErrBadTerminal = errors.New("galaxy: probability table must end in 1.0")

	// ErrUnsatisfiableMass indicates positive probability mass on a candidate
	// set that is empty for some node (a level with no cluster other than the
	// node's own, or a local set in a single-node cluster).
	ErrUnsatisfiableMass = errors.New("galaxy: probability mass has no candidates")
)

// Runtime errors.
var (
	// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
	ErrNeedRandSource = errors.New("galaxy: rng is required")

	// ErrNoCandidates indicates that target selection found no eligible node.
	// It is unreachable for a Spec accepted by Validate.
	ErrNoCandidates = errors.New("galaxy: no candidate nodes")

	// ErrAlreadyPopulated indicates CreateNodes was called twice.
	ErrAlreadyPopulated = errors.New("galaxy: nodes already created")

	// ErrNotPopulated indicates an edge operation before CreateNodes.
	ErrNotPopulated = errors.New("galaxy: nodes not created")

	// ErrNodeNotFound indicates an unknown node ID.
	ErrNodeNotFound = errors.New("galaxy: node not found")

	// ErrInvariant indicates a broken structural invariant (self link,
	// asymmetric link, or cluster ownership mismatch).
	ErrInvariant = errors.New("galaxy: invariant violated")
)

// Canonical method names used as error prefixes.
const (
	methodValidate        = "Validate"
	methodNew             = "New"
	methodCreateNodes     = "CreateNodes"
	methodCreateEdges     = "CreateEdges"
	methodEnsureEdges     = "EnsureEdges"
	methodSelectTarget    = "SelectTarget"
	methodCheckInvariants = "CheckInvariants"
)
