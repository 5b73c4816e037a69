package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertex indicates a negative vertex ID.
	ErrBadVertex = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a directed, unweighted, in-memory graph over int vertex IDs.
//
// mu guards vertices, adjacency and edgeCount.
// adjacency[from] holds out-neighbors in insertion order.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	vertices  map[int]struct{}
	adjacency map[int][]int
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph has no loops and no multi-edges.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	// MaxOutDegree is the largest number of outgoing edges on any vertex.
	MaxOutDegree int
	// Sinks counts vertices without outgoing edges.
	Sinks int
}
