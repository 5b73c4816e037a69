// Package solver computes the minimum number of six-sided-die rolls needed to
// carry a piece from square 1 to square 100 on a board.Board.
//
// Model
//
//	The board is an implicit graph: vertices are squares 1..100 and every square
//	s has an edge to Effect(s+d) for each face d ∈ [1,6] with s+d ≤ 100. A face
//	that would overshoot 100 is simply not taken. Every edge is one roll, so a
//	breadth-first search from 1 yields the optimal roll count.
//
//	RollGraph materialises that graph as a core.Graph; Solve runs bfs.BFS over it
//	with square 100 as the target and stops the moment the goal is discovered.
//
// Unreachable goal
//
//	Snakes on six consecutive squares in front of the goal can make 100
//	unreachable. The search is bounded by the 100 squares, so this surfaces as
//	ErrUnreachableGoal when the queue runs dry, never as a hang.
//
// Concurrency
//
//	A Solver holds only the immutable board and its roll graph; every Solve call
//	owns its own queue and visited set. Solvers and boards may be shared across
//	goroutines without locking.
package solver
