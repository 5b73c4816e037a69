package board

import "fmt"

// Snake is a backward teleport from Mouth to Tail.
// The zero value is not a valid snake; use NewSnake.
type Snake struct {
	mouth, tail Square
}

// NewSnake validates (mouth, tail) and returns an immutable Snake.
//
// Errors:
//   - ErrOutOfRange    if mouth ∉ [11,99] or tail ∉ [1,90].
//   - ErrInvertedRange if mouth ≤ tail.
func NewSnake(mouth, tail int) (Snake, error) {
	m, t := Square(mouth), Square(tail)
	if err := checkBound("snake", "mouth", m, MinSnakeMouth, MaxSnakeMouth); err != nil {
		return Snake{}, err
	}
	if err := checkBound("snake", "tail", t, MinSnakeTail, MaxSnakeTail); err != nil {
		return Snake{}, err
	}
	if m <= t {
		return Snake{}, fmt.Errorf("%w: snake mouth %d must be above tail %d", ErrInvertedRange, m, t)
	}

	return Snake{mouth: m, tail: t}, nil
}

// Mouth returns the square the snake swallows the piece on.
func (s Snake) Mouth() Square { return s.mouth }

// Tail returns the square the snake drops the piece on.
func (s Snake) Tail() Square { return s.tail }

func (s Snake) String() string {
	return fmt.Sprintf("snake(%d→%d)", s.mouth, s.tail)
}
