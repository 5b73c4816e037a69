package board

import "fmt"

// Ladder is a forward teleport from Bottom to Top.
// The zero value is not a valid ladder; use NewLadder.
type Ladder struct {
	bottom, top Square
}

// NewLadder validates (bottom, top) and returns an immutable Ladder.
//
// Errors:
//   - ErrOutOfRange    if bottom ∉ [2,90] or top ∉ [11,100].
//   - ErrInvertedRange if bottom ≥ top.
//
// Complexity: O(1).
func NewLadder(bottom, top int) (Ladder, error) {
	b, t := Square(bottom), Square(top)
	if err := checkBound("ladder", "bottom", b, MinLadderBottom, MaxLadderBottom); err != nil {
		return Ladder{}, err
	}
	if err := checkBound("ladder", "top", t, MinLadderTop, MaxLadderTop); err != nil {
		return Ladder{}, err
	}
	if b >= t {
		return Ladder{}, fmt.Errorf("%w: ladder bottom %d must be below top %d", ErrInvertedRange, b, t)
	}

	return Ladder{bottom: b, top: t}, nil
}

// Bottom returns the square the ladder starts on.
func (l Ladder) Bottom() Square { return l.bottom }

// Top returns the square the ladder leads to.
func (l Ladder) Top() Square { return l.top }

// String renders the ladder as "ladder(bottom→top)".
func (l Ladder) String() string {
	return fmt.Sprintf("ladder(%d→%d)", l.bottom, l.top)
}
