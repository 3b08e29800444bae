// Package csrflow is a compressed-sparse-row graph and network-flow
// algorithms core, built for sparse directed graphs with integer or
// real-valued arc costs.
//
// It brings together three tightly coupled subsystems:
//
//	csrgraph/     — an immutable, dense-indexed directed graph in CSR form
//	forest/       — predecessor (parent vertex, parent edge) arrays with
//	                view iteration up to roots
//	shortestpath/ — forest + per-vertex label/distance state, the shared
//	                scaffold for search algorithms
//	dijkstra/     — best-first shortest-path search over a priority queue
//	dial/         — bucketed shortest-path search for small integer weights
//	residual/     — a residual-network wrapper (forward/reverse arc
//	                doubling, node excess/potential, arc cost/capacity)
//	                over which shortest-path searches compute
//	                minimum-cost-flow augmenting paths
//
// Graphs are immutable once built; search state is mutable, owned by the
// caller, and reusable across runs via Reset. There is no persistence, no
// dynamic topology, and no concurrency across graph mutation — searches
// must not be driven concurrently on the same state.
package csrflow
