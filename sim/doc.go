// Package sim provides the pedestrian street-crossing simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - graph.go: the city graph, a grid of 2×2 intersections joined by block edges
//   - signal.go: the periodic signal timing oracle and per-journey offsets
//   - strategy.go: the closed set of decision strategies
//   - journey.go: the per-journey event loop
//
// # Experiments
//
// A batch runs many independent journeys, each with its own PartitionedRNG
// (rng.go) and therefore its own signal offsets:
//   - enumerate.go: every monotone path between two nodes and its Signature
//   - analysis.go: attribution of journeys to path classes, per-class statistics
//   - compare.go, ranksum.go: per-strategy statistics and pairwise rank-sum tests
//   - visits.go: node-visit counts and mirror-symmetry checks
//
// Sub-packages:
//   - sim/trace/: per-step decision records for a single journey
//   - sim/lattice/: a graph-free reduced model of the walk
//
// Rendering and reporting consume the exported data (Graph, Layout,
// PathAnalysis, JourneyResult, Comparison); this package never draws or
// prints reports.
package sim
