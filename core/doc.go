// Package core defines the directed, unweighted Graph used to materialise
// move graphs, and provides thread-safe primitives for building and querying it.
//
// Vertices are non-negative integers. Edges are directed (from → to) and carry
// no weight: every edge costs exactly one step, which is what breadth-first
// search needs to produce shortest paths.
//
// Determinism
//
//	NeighborIDs returns out-neighbors in the order their edges were added, and
//	Vertices returns IDs in ascending order, so traversals over a Graph built
//	by a deterministic procedure are fully reproducible.
//
// Concurrency
//
//	A single sync.RWMutex guards the vertex set and adjacency. Any number of
//	readers may run concurrently with each other; writers are serialised.
//
// Errors:
//
//	ErrBadVertex           - vertex ID is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
