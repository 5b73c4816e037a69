// SPDX-License-Identifier: MIT
// Package: snakesladders/builder
//
// random.go: RandomBoard rejection sampler.
//
// Contract:
//   - All endpoints of all specials are pairwise distinct.
//   - Ladders are drawn before snakes; both in index order.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Determinism:
//   - Fixed draw order → identical boards for identical seed/options.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/snakesladders/board"
)

// RandomBoard samples a valid board.
//
// Errors:
//   - ErrOptionViolation for out-of-domain options.
//   - ErrNeedRandSource without WithSeed/WithRand.
//   - ErrConstructFailed when maxAttempts draws could not place an entity.
func RandomBoard(opts ...Option) (*board.Board, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	nl, ns := cfg.ladders, cfg.snakes
	if nl == 0 {
		nl = between(cfg.rng, board.MinLadders, board.MaxLadders)
	}
	if ns == 0 {
		ns = between(cfg.rng, board.MinSnakes, board.MaxSnakes)
	}

	used := make(map[board.Square]bool, 2*(nl+ns))
	ladders := make([]board.Ladder, 0, nl)
	for i := 0; i < nl; i++ {
		l, err := sampleLadder(cfg, used)
		if err != nil {
			return nil, fmt.Errorf("RandomBoard: ladder #%d: %w", i, err)
		}
		ladders = append(ladders, l)
	}
	snakes := make([]board.Snake, 0, ns)
	for i := 0; i < ns; i++ {
		s, err := sampleSnake(cfg, used)
		if err != nil {
			return nil, fmt.Errorf("RandomBoard: snake #%d: %w", i, err)
		}
		snakes = append(snakes, s)
	}

	return board.NewBoard(ladders, snakes)
}

func sampleLadder(cfg config, used map[board.Square]bool) (board.Ladder, error) {
	for a := 0; a < cfg.maxAttempts; a++ {
		bottom := between(cfg.rng, int(board.MinLadderBottom), int(board.MaxLadderBottom))
		top := between(cfg.rng, max(bottom+1, int(board.MinLadderTop)), int(board.MaxLadderTop))
		if used[board.Square(bottom)] || used[board.Square(top)] {
			continue
		}
		l, err := board.NewLadder(bottom, top)
		if err != nil {
			return board.Ladder{}, err
		}
		used[l.Bottom()], used[l.Top()] = true, true
		return l, nil
	}
	return board.Ladder{}, fmt.Errorf("%w: %d attempts", ErrConstructFailed, cfg.maxAttempts)
}

func sampleSnake(cfg config, used map[board.Square]bool) (board.Snake, error) {
	for a := 0; a < cfg.maxAttempts; a++ {
		mouth := between(cfg.rng, int(board.MinSnakeMouth), int(board.MaxSnakeMouth))
		tail := between(cfg.rng, int(board.MinSnakeTail), min(mouth-1, int(board.MaxSnakeTail)))
		if used[board.Square(mouth)] || used[board.Square(tail)] {
			continue
		}
		s, err := board.NewSnake(mouth, tail)
		if err != nil {
			return board.Snake{}, err
		}
		used[s.Mouth()], used[s.Tail()] = true, true
		return s, nil
	}
	return board.Snake{}, fmt.Errorf("%w: %d attempts", ErrConstructFailed, cfg.maxAttempts)
}

// between draws uniformly from [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
