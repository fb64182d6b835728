// Package mwc finds maximum weight cliques in undirected vertex-weighted
// graphs and benchmarks the search engines over generated graph sweeps.
//
// A clique is a set of pairwise adjacent vertices; its weight is the sum of
// its vertex weights. Three engines share one contract (clique.Engine):
//
//	Exhaustive    enumerates all 2^n subsets; exact, n ≤ 62
//	Greedy        one greedy clique per seed vertex; fast, may miss the optimum
//	Backtracking  branch-and-bound DFS with a weight-sum bound; exact
//
// Every engine reports the best clique together with an operation count and
// the number of solutions tested, which the benchmark harness records.
//
// Packages:
//
//	core/        thread-safe weighted graph and frozen bitset views
//	clique/      the engines and the shared Clique/Result types
//	builder/     deterministic graph constructors (random, complete, cycle…)
//	store/       BadgerDB cache of generated graphs
//	experiment/  sweep generation and the timed benchmark runner
//	report/      CSV and text result files, greedy accuracy comparison
//	metrics/     Prometheus instrumentation of searches and runs
//	config/      YAML + environment configuration and logger setup
//	cmd/mwc/     command line front end
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddVertex(0, 5)
//	_ = g.AddVertex(1, 3)
//	_ = g.AddVertex(2, 10)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(0, 2)
//
//	res, _ := clique.Search(g, clique.DefaultOptions())
//	fmt.Println(res.Clique) // [2 0 1] (weight 18)
package mwc
