// Package core provides the vertex-weighted, undirected, simple Graph used by
// the clique search engines, together with View, its immutable dense snapshot.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices carry a unique int ID and a strictly positive int64 weight.
//     An optional (X,Y) position is kept for plotting tools and is never read
//     by search code.
//   - Edges are undirected and unweighted. The edge relation is symmetric,
//     irreflexive (no self-loops) and has no duplicates; AddEdge enforces all
//     three and reports violations with sentinel errors.
//   - Every enumeration (Vertices, NeighborIDs, Edges) is sorted, so results
//     never depend on map iteration order.
//   - A single sync.RWMutex guards the vertex catalog and the adjacency sets,
//     so graphs may be built and read from several goroutines.
//
// Why a separate View?
//
//	Search engines read the graph millions of times per call. Freeze() copies
//	the graph once into index space (ascending ID order), with weights in a
//	flat slice and adjacency as bitsets. A View is never mutated after
//	construction, which is what makes a search call see one consistent graph
//	and lets independent searches share it without locks.
//
// Core methods:
//
//	AddVertex(id int, weight int64, opts ...VertexOption) error // O(1)
//	AddEdge(u, v int) error                                      // O(1)
//	HasVertex(id int) bool                                       // O(1)
//	HasEdge(u, v int) bool                                       // O(1)
//	Vertex(id int) (Vertex, error)                               // O(1)
//	Vertices() []int                                             // O(V·log V)
//	NeighborIDs(id int) ([]int, error)                           // O(d·log d)
//	Edges() [][2]int                                             // O(E·log E)
//	Degree(id int) (int, error)                                  // O(1)
//	VertexCount(), EdgeCount(), TotalWeight()                    // O(1), O(1), O(V)
//	Clone() *Graph                                               // O(V+E)
//	Freeze() *View                                               // O(V²/64 + E)
//
// Errors:
//
//	ErrVertexNotFound   - an operation referenced a missing vertex.
//	ErrDuplicateVertex  - AddVertex with an ID already present.
//	ErrBadWeight        - vertex weight is not strictly positive.
//	ErrLoopNotAllowed   - AddEdge(v, v).
//	ErrDuplicateEdge    - AddEdge for a pair already connected.
package core
