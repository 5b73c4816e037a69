package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snakesladders/board"
	"github.com/katalvlaran/snakesladders/core"
)

// DieFaces is the number of faces on the die; a roll advances 1..DieFaces squares.
const DieFaces = 6

// RollGraph builds the move graph of b: one vertex per square and one edge per
// distinct square reachable with a single roll.
//
// Implementation:
//   - Stage 1: add every square as a vertex so sinks (100) and unreachable squares exist.
//   - Stage 2: for each square and face, land on s+d (if ≤ 100) and follow Effect.
//   - Stage 3: drop self-loops (a snake back to the rolling square) and parallel edges
//     (two faces leading to the same square); neither can shorten a path.
//
// Complexity: O(MaxSquare · DieFaces).
func RollGraph(b *board.Board) (*core.Graph, error) {
	if b == nil {
		return nil, ErrNilBoard
	}

	g := core.NewGraph()
	for sq := board.MinSquare; sq <= board.MaxSquare; sq++ {
		if err := g.AddVertex(int(sq)); err != nil {
			return nil, err
		}
	}

	for sq := board.MinSquare; sq < board.MaxSquare; sq++ {
		for d := board.Square(1); d <= DieFaces && sq+d <= board.MaxSquare; d++ {
			to := b.Effect(sq + d)
			err := g.AddEdge(int(sq), int(to))
			switch {
			case err == nil:
			case errors.Is(err, core.ErrLoopNotAllowed), errors.Is(err, core.ErrMultiEdgeNotAllowed):
				// no shorter path through either
			default:
				return nil, fmt.Errorf("solver: edge %d→%d: %w", sq, to, err)
			}
		}
	}

	return g, nil
}
