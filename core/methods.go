// File: methods.go
// Role: Vertex and edge mutation plus read-only queries.
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.
//   - Returned slices are copies and never alias internal storage.

package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts id if it is not already present. Idempotent.
//
// Errors:
//   - ErrBadVertex if id < 0.
//
// Complexity: O(1) amortised.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrBadVertex, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts a directed edge from → to, creating missing endpoints.
//
// Implementation:
//   - Stage 1: validate IDs and the loop policy.
//   - Stage 2: under the write lock, reject parallel edges unless WithMultiEdges.
//   - Stage 3: append to from's adjacency so NeighborIDs keeps insertion order.
//
// Errors:
//   - ErrBadVertex, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(outdeg(from)) for the parallel-edge check, Space O(1) amortised.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("%w: %d→%d", ErrBadVertex, from, to)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && slices.Contains(g.adjacency[from], to) {
		return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Contains(g.adjacency[from], to)
}

// NeighborIDs returns the out-neighbors of id in edge insertion order.
// Parallel edges yield repeated IDs.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(outdeg(id)).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return slices.Clone(g.adjacency[id]), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Stats returns a snapshot summary in O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: g.edgeCount}
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if d == 0 {
			st.Sinks++
		}
		st.MaxOutDegree = max(st.MaxOutDegree, d)
	}

	return st
}
