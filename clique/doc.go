// Package clique computes the Maximum Weight Clique (MWC) of a vertex-weighted
// undirected core.Graph.
//
// Three engines implement the same Engine contract:
//
//   - ExhaustiveEngine enumerates all 2^n vertex subsets by size and then
//     lexicographically. Exact, Θ(2^n·n²), capped at 62 vertices.
//   - GreedyEngine builds one clique per seed vertex by repeatedly admitting
//     the heaviest common neighbor. Fast, no optimality guarantee.
//   - BacktrackingEngine is a branch-and-bound DFS over a single
//     weight-descending vertex order, pruning branches whose weight plus
//     remaining candidate weight cannot beat the incumbent. Exact.
//
// Every engine reports an operation count and a tested-solution count:
//
//	Exhaustive:   TestedSolutions = 2^n
//	Greedy:       TestedSolutions = 1
//	Backtracking: TestedSolutions = 1
//
// The operation counts are instrumentation for empirical complexity analysis
// and are part of the contract: repeated searches on an unmodified graph
// return identical counters.
//
// Result.Clique is nil iff the graph has no vertices. Ties on weight keep the
// first clique discovered in the engine's enumeration order.
//
// Determinism:
//   - Each engine works on a core.View (ascending-ID index order) and fixes
//     every tie-break by vertex ID; outputs never depend on map iteration.
//
// Concurrency:
//   - Engines hold no per-search state. Distinct Search calls may run on
//     separate goroutines against the same graph.
//
// Errors:
//   - ErrNilGraph         - nil *core.Graph.
//   - ErrTooManyVertices  - exhaustive search asked for more than 62 vertices.
//   - ErrUnknownAlgorithm - unrecognized Algorithm in the dispatcher.
//   - ErrNotAClique, ErrWeightMismatch - returned by Clique.Validate only.
//
// Quick start:
//
//	res, err := clique.Search(g, clique.DefaultOptions())
//	if err != nil { ... }
//	if res.Found() {
//		fmt.Println(res.Clique.Sorted(), res.Weight())
//	}
package clique
