// Package core defines Vertex and Graph, the sentinel errors of the package,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrBadWeight indicates a vertex weight that is zero or negative.
	ErrBadWeight = errors.New("core: vertex weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between the two vertices already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Vertex is a weighted node of the graph.
//
// X and Y are layout metadata for external plotting; search code never reads them.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID int

	// Weight is the strictly positive value summed into clique weights.
	Weight int64

	// X, Y are the optional grid position of the vertex.
	X, Y int
}

// VertexOption configures optional properties of a vertex when added.
type VertexOption func(*Vertex)

// WithPosition records the layout position of a vertex.
func WithPosition(x, y int) VertexOption {
	return func(v *Vertex) { v.X, v.Y = x, y }
}

// Graph is a vertex-weighted undirected simple graph.
//
// mu guards vertices, adjacency and edgeCount. adjacency is mirrored: for an
// edge {u,v} both adjacency[u][v] and adjacency[v][u] are present.
type Graph struct {
	mu sync.RWMutex

	vertices  map[int]*Vertex
	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[int]*Vertex),
		adjacency: make(map[int]map[int]struct{}),
	}
}
