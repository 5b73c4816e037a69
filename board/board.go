// SPDX-License-Identifier: MIT
//
// File: board.go
// Role: Board aggregate: count validation, cross-validation and the effect index.
// Policy:
//   - Construction is all-or-nothing; a *Board is never partially valid.
//   - No mutators; accessors return copies.

package board

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Board owns the ladders and snakes of one game and the derived effect index.
type Board struct {
	ladders []Ladder
	snakes  []Snake

	// effect[s] is the square a piece occupies after landing on s.
	// Index 0 is unused.
	effect [MaxSquare + 1]Square
}

// NewBoard validates and assembles a Board.
//
// Implementation:
//   - Stage 1: check collection sizes against [1,15].
//   - Stage 2: reject zero-value entities that bypassed NewLadder/NewSnake.
//   - Stage 3: cross-validate every (ladder, snake) pair on all four endpoint equalities.
//   - Stage 4: reject duplicated teleport sources and chained teleports.
//   - Stage 5: build the dense effect index.
//
// Errors:
//   - ErrCountOutOfRange when either collection holds fewer than 1 or more than 15 entries.
//   - ErrOutOfRange for a zero-value Ladder or Snake.
//   - ErrOverlappingEndpoint when a ladder and a snake share any endpoint, when
//     one square starts two teleports, or when a teleport ends on the start of
//     another, as in ladders (2,38) and (38,60). Two ladders or two snakes may
//     share a destination.
//
// Complexity:
//   - Time O(L·S + MaxSquare), Space O(L + S + MaxSquare).
func NewBoard(ladders []Ladder, snakes []Snake) (*Board, error) {
	if n := len(ladders); n < MinLadders || n > MaxLadders {
		return nil, fmt.Errorf("%w: %d ladders not in [%d,%d]", ErrCountOutOfRange, n, MinLadders, MaxLadders)
	}
	if n := len(snakes); n < MinSnakes || n > MaxSnakes {
		return nil, fmt.Errorf("%w: %d snakes not in [%d,%d]", ErrCountOutOfRange, n, MinSnakes, MaxSnakes)
	}

	for i, l := range ladders {
		if !l.bottom.Valid() || !l.top.Valid() {
			return nil, fmt.Errorf("%w: ladder #%d was not built with NewLadder", ErrOutOfRange, i)
		}
	}
	for i, s := range snakes {
		if !s.mouth.Valid() || !s.tail.Valid() {
			return nil, fmt.Errorf("%w: snake #%d was not built with NewSnake", ErrOutOfRange, i)
		}
	}

	for _, l := range ladders {
		for _, s := range snakes {
			if l.bottom == s.mouth || l.bottom == s.tail || l.top == s.mouth || l.top == s.tail {
				return nil, fmt.Errorf("%w: %v and %v", ErrOverlappingEndpoint, l, s)
			}
		}
	}

	b := &Board{
		ladders: slices.Clone(ladders),
		snakes:  slices.Clone(snakes),
	}
	if err := b.index(); err != nil {
		return nil, err
	}

	return b, nil
}

// index fills the effect table. A square may be the source of at most one
// teleport, and no destination may itself be a source.
func (b *Board) index() error {
	for s := MinSquare; s <= MaxSquare; s++ {
		b.effect[s] = s
	}

	for _, l := range b.ladders {
		if b.effect[l.bottom] != l.bottom {
			return fmt.Errorf("%w: square %d starts two ladders", ErrOverlappingEndpoint, l.bottom)
		}
		b.effect[l.bottom] = l.top
	}
	for _, s := range b.snakes {
		if b.effect[s.mouth] != s.mouth {
			return fmt.Errorf("%w: square %d starts two snakes", ErrOverlappingEndpoint, s.mouth)
		}
		b.effect[s.mouth] = s.tail
	}

	// chains: a destination that is also a source
	for src := MinSquare; src <= MaxSquare; src++ {
		dst := b.effect[src]
		if dst != src && b.effect[dst] != dst {
			return fmt.Errorf("%w: %d→%d lands on another start at %d", ErrOverlappingEndpoint, src, dst, dst)
		}
	}

	return nil
}

// Effect returns the square a piece occupies after landing on sq: the ladder
// top or snake tail when sq starts one, else sq itself. Squares off the board
// are returned unchanged.
// Complexity: O(1).
func (b *Board) Effect(sq Square) Square {
	if !sq.Valid() {
		return sq
	}
	return b.effect[sq]
}

// IsSpecial reports whether landing on sq teleports the piece.
func (b *Board) IsSpecial(sq Square) bool {
	return b.Effect(sq) != sq
}

// Ladders returns a copy of the board's ladders in construction order.
func (b *Board) Ladders() []Ladder { return slices.Clone(b.ladders) }

// Snakes returns a copy of the board's snakes in construction order.
func (b *Board) Snakes() []Snake { return slices.Clone(b.snakes) }

// Fingerprint returns a canonical text key for the board: ladders and snakes
// sorted by start square. Two boards with the same specials in any order
// share a fingerprint.
func (b *Board) Fingerprint() string {
	var sb strings.Builder
	sb.WriteString("L:")
	writePairs(&sb, b.ladders, func(l Ladder) (Square, Square) { return l.bottom, l.top })
	sb.WriteString(";S:")
	writePairs(&sb, b.snakes, func(s Snake) (Square, Square) { return s.mouth, s.tail })
	return sb.String()
}

func (b *Board) String() string {
	return fmt.Sprintf("board{%d ladders, %d snakes}", len(b.ladders), len(b.snakes))
}

func writePairs[T any](sb *strings.Builder, items []T, ends func(T) (Square, Square)) {
	pairs := make([][2]Square, 0, len(items))
	for _, it := range items {
		from, to := ends(it)
		pairs = append(pairs, [2]Square{from, to})
	}
	slices.SortFunc(pairs, func(a, b [2]Square) int {
		if a[0] != b[0] {
			return int(a[0] - b[0])
		}
		return int(a[1] - b[1])
	})
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(p[0])))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(int(p[1])))
	}
}
