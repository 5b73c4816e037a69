// Package snakesladders computes the fewest die rolls needed to cross a
// Snakes-and-Ladders board, from square 1 to square 100.
//
// 🎲 What is in the box?
//
//	A small, thread-safe library plus a CLI:
//		• board:   validated Ladder, Snake and Board values with an O(1) Effect index
//		• core:    a directed int-keyed graph guarded by an RWMutex
//		• bfs:     breadth-first search with hooks, depth limits and early stop
//		• solver:  the roll graph of a board and MinimumRolls / Solve on top of bfs
//		• builder: seeded random boards that satisfy every board rule
//
// Under the hood, the CLI lives in internal/:
//
//	internal/input/     the T / N pairs / M pairs case format
//	internal/config/    viper + env settings (SNL_* variables)
//	internal/store/     SQLite history of solved boards
//	internal/telemetry/ optional OpenTelemetry tracing
//	internal/cli/       cobra commands: solve, generate, show, history, version
//
// Quick example:
//
//	l, _ := board.NewLadder(2, 38)
//	s, _ := board.NewSnake(99, 10)
//	b, _ := board.NewBoard([]board.Ladder{l}, []board.Snake{s})
//	rolls, err := solver.MinimumRolls(b) // 12, nil
//
// Every square s has an edge to Effect(s+d) for each die face d with
// s+d ≤ 100; the answer is the BFS depth of square 100, or
// solver.ErrUnreachableGoal when snakes wall it off.
//
//	go install github.com/katalvlaran/snakesladders/cmd/snakesladders@latest
package snakesladders
