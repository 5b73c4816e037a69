package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/snakesladders/bfs"
	"github.com/katalvlaran/snakesladders/board"
	"github.com/katalvlaran/snakesladders/core"
)

var (
	// ErrNilBoard is returned when a nil *board.Board is supplied.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrUnreachableGoal is returned when the search exhausts every reachable
	// square without discovering the goal.
	ErrUnreachableGoal = errors.New("solver: goal square unreachable")
)

// Move is one roll on an optimal route.
type Move struct {
	From   board.Square // square the piece rests on before the roll
	Face   int          // die face rolled
	Landed board.Square // From + Face
	To     board.Square // Effect(Landed): where the piece rests afterwards
}

// Teleported reports whether the move triggered a ladder or snake.
func (m Move) Teleported() bool { return m.Landed != m.To }

// Solution is the result of a successful solve.
type Solution struct {
	// Rolls is the minimum number of rolls from MinSquare to MaxSquare.
	Rolls int
	// Path lists the resting squares of one optimal route, starting at MinSquare
	// and ending at MaxSquare; len(Path) == Rolls+1.
	Path []board.Square
	// Moves explains each step of Path; len(Moves) == Rolls.
	Moves []Move
	// Discovered counts squares the search reached, the goal included.
	Discovered int
	// Expanded counts squares whose rolls were tried before the goal turned up.
	Expanded int
}

// Solver answers repeated queries against one board. It is immutable and safe
// for concurrent use.
type Solver struct {
	board *board.Board
	graph *core.Graph
}

// NewSolver prepares the roll graph of b once.
func NewSolver(b *board.Board) (*Solver, error) {
	g, err := RollGraph(b)
	if err != nil {
		return nil, err
	}
	return &Solver{board: b, graph: g}, nil
}

// Board returns the board this solver was built for.
func (s *Solver) Board() *board.Board { return s.board }

// MinimumRolls returns the minimum number of rolls from 1 to 100.
func (s *Solver) MinimumRolls() (int, error) {
	sol, err := s.Solve(context.Background())
	if err != nil {
		return 0, err
	}
	return sol.Rolls, nil
}

// Solve runs a breadth-first search from MinSquare that stops on first
// discovery of MaxSquare, and reconstructs one optimal route.
//
// Errors:
//   - ErrUnreachableGoal if the goal is never discovered.
//   - ctx.Err() if ctx is cancelled mid-search.
func (s *Solver) Solve(ctx context.Context) (Solution, error) {
	start, goal := int(board.MinSquare), int(board.MaxSquare)

	var discovered, expanded int
	res, err := bfs.BFS(s.graph, start,
		bfs.WithContext(ctx),
		bfs.WithTarget(goal),
		bfs.WithOnEnqueue(func(int, int) { discovered++ }),
		bfs.WithOnDequeue(func(int, int) { expanded++ }),
	)
	if err != nil {
		return Solution{}, err
	}
	if !res.Found {
		return Solution{}, fmt.Errorf("%w: explored %d squares", ErrUnreachableGoal, discovered)
	}

	ids, err := res.PathTo(goal)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Rolls: res.Depth[goal],
		Path:  make([]board.Square, len(ids)),
		Moves: make([]Move, 0, len(ids)-1),

		Discovered: discovered,
		Expanded:   expanded,
	}
	for i, id := range ids {
		sol.Path[i] = board.Square(id)
	}
	for i := 1; i < len(sol.Path); i++ {
		sol.Moves = append(sol.Moves, s.explain(sol.Path[i-1], sol.Path[i]))
	}

	return sol, nil
}

// explain finds the smallest face that carries the piece from → to.
// The edge exists in the roll graph, so some face always matches.
func (s *Solver) explain(from, to board.Square) Move {
	for d := 1; d <= DieFaces; d++ {
		landed := from + board.Square(d)
		if landed > board.MaxSquare {
			break
		}
		if s.board.Effect(landed) == to {
			return Move{From: from, Face: d, Landed: landed, To: to}
		}
	}
	return Move{From: from, To: to}
}

// Solve is shorthand for NewSolver(b) followed by Solve(ctx).
func Solve(ctx context.Context, b *board.Board) (Solution, error) {
	s, err := NewSolver(b)
	if err != nil {
		return Solution{}, err
	}
	return s.Solve(ctx)
}

// MinimumRolls returns the minimum number of die rolls needed to move from
// square 1 to square 100 on b.
//
// Errors:
//   - ErrNilBoard if b is nil.
//   - ErrUnreachableGoal if no sequence of rolls reaches 100.
func MinimumRolls(b *board.Board) (int, error) {
	sol, err := Solve(context.Background(), b)
	if err != nil {
		return 0, err
	}
	return sol.Rolls, nil
}
