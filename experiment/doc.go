// Package experiment drives the maximum weight clique engines over a sweep
// of generated graphs and streams one Record per search to a Sink.
//
// A sweep covers every vertex count in [MinVertices, MaxVertices] crossed
// with every edge probability, in that order. Graphs come from
// builder.RandomGraph and are optionally cached in a store.Store, so a
// second run reuses the exact same instances.
//
// Runner.Run executes one algorithm sequentially over the sweep. Once a
// single search takes longer than the configured timeout the remaining
// instances are abandoned, since larger graphs only get slower.
// Runner.RunAll runs several algorithms concurrently; the instances are
// shared read-only between them.
package experiment
