// Package galaxy procedurally generates a "galaxy": a graph of systems (nodes)
// partitioned into hierarchical clusters and wired with jump-point links.
//
// Generation runs in three deterministic phases:
//
//  1. New validates a level Spec and creates the clusters. Every level gets
//     Clusters clusters, each carrying the level's node count and cumulative
//     probability table. Cluster IDs are global and assigned in ascending
//     level order, then creation order.
//  2. CreateNodes populates every cluster in the same stable order and assigns
//     global, monotonically increasing node IDs.
//  3. CreateEdges walks the flat node list once. For each node it samples a
//     target degree (SampleDegree) and asks SelectTarget for that many
//     partners, recording every link on both endpoints.
//
// Locality weighting:
//
// A node's cluster carries a cumulative table [t0, t1, ..., tk=1.0]. One
// uniform draw p picks the link's destination:
//
//	p < t0           local: any other node of the same cluster
//	t(i-1) <= p < ti the level i-1: any node of a cluster at level i-1,
//	                 excluding the origin's own cluster
//
// Examples:
//
//	[0.7, 0.8, 1]      70% local, 10% to level 0, 20% to level 1
//	[0.8, 0.8, 1]      80% local,  0% to level 0, 20% to level 1
//	[0.5, 0.6, 0.7, 1] 50% local, 10% level 0, 10% level 1, 30% level 2
//
// Degree drift:
//
// Edge sets are deduplicating. Re-selecting a neighbor that is already linked
// is a no-op, so a node may end below its sampled degree. Later nodes may also
// link back to a node that already finished its pass, so early nodes often end
// above it. Targets never check for "free" capacity (dormant jump points), so
// the mean degree of a galaxy is higher than SampleDegree alone predicts.
// Full connectivity is not guaranteed; isolated nodes are possible.
//
// Determinism:
//
// All randomness flows through a single *rand.Rand supplied with WithSeed or
// WithRand. For a fixed seed and Spec, two runs produce identical snapshots.
// A Galaxy is not safe for concurrent use.
package galaxy
