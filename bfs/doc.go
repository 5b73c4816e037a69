// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found:  whether the WithTarget vertex was discovered
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Stops as soon as a target vertex is discovered (WithTarget).
//
// Why first discovery is final
//
//	All edges cost one step and the queue is FIFO, so vertices leave the queue in
//	non-decreasing depth. The first time a vertex is discovered its depth is
//	therefore minimal; later discoveries are ignored, never merged.
//
// Determinism
//
//	core.Graph.NeighborIDs returns out-neighbors in insertion order and BFS
//	enqueues them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithTarget(100),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // context errors, or wrapped OnVisit errors
//	}
//	if res.Found {
//	    path, _ := res.PathTo(100)
//	}
package bfs
