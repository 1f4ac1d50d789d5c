// Package topology analyzes a finished galaxy snapshot without mutating it.
//
// Analyze reports:
//
//   - degree statistics (min, max, mean, histogram);
//   - isolated nodes (degree 0) and connected components, found with a
//     queue-based breadth-first sweep in ascending node order;
//   - locality counts: links inside one cluster versus links between
//     clusters, broken down by the unordered pair of cluster levels.
//
// Generation never guarantees connectivity. Callers decide what to do with a
// disconnected result; this package only describes it.
package topology
