package board

import "fmt"

// Square identifies one board position in [MinSquare, MaxSquare].
type Square int

// Board geometry.
const (
	// MinSquare is the starting square.
	MinSquare Square = 1
	// MaxSquare is the goal square.
	MaxSquare Square = 100
	// Width is the number of squares per printed row.
	Width = 10
)

// Entity bounds.
const (
	MinLadders = 1
	MaxLadders = 15
	MinSnakes  = 1
	MaxSnakes  = 15

	MinLadderBottom Square = 2
	MaxLadderBottom Square = 90
	MinLadderTop    Square = 11
	MaxLadderTop    Square = 100

	MinSnakeMouth Square = 11
	MaxSnakeMouth Square = 99
	MinSnakeTail  Square = 1
	MaxSnakeTail  Square = 90
)

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= MinSquare && s <= MaxSquare
}

// checkBound returns ErrOutOfRange wrapped with the field name when v ∉ [lo, hi].
func checkBound(entity, field string, v, lo, hi Square) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %s %d not in [%d,%d]", ErrOutOfRange, entity, field, v, lo, hi)
	}
	return nil
}
