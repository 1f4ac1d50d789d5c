// Package galaxygen is a procedural generator for "galaxies": graphs of
// systems (nodes) grouped into hierarchical clusters and linked by jump
// points whose reach is shaped by a per-level locality table.
//
// What is in the box?
//
//	galaxy/    - Spec validation, cluster/node/edge generation, invariants, Snapshot
//	levels/    - YAML, TOML and JSON level-spec loaders + the built-in default galaxy
//	topology/  - degree histogram, components, local vs cross-cluster link counts
//	dot/       - Graphviz DOT encoder (one subgraph per cluster)
//	store/     - SQLite run archive (save, list, reload snapshots)
//	logger/    - zap logger construction shared by the tools
//	cmd/galaxygen - the CLI: generate, validate, runs, stats
//
// Quick sketch of a two-level galaxy:
//
//	  level 1:  [C1]──[C2]──[C3]     (regional clusters, 10 systems each)
//	               \    |    /
//	  level 0:       [ C0 ]          (core cluster, 20 systems)
//
// A node in C2 with table [0.7, 0.9, 1.0] links inside C2 with probability
// 0.7, into C0 with 0.2 and into C1 or C3 with 0.1.
//
// Generation is fully deterministic for a given seed:
//
//	g, err := galaxy.Generate(levels.Default(), galaxy.WithSeed(42))
//
//	go install github.com/katalvlaran/galaxygen/cmd/galaxygen@latest
package galaxygen
