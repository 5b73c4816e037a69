package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/snakesladders/board"
)

// Option customizes RandomBoard by mutating a config before sampling begins.
type Option func(*config)

// config aggregates all knobs used by RandomBoard.
type config struct {
	rng *rand.Rand
	// ladders/snakes of 0 mean "draw the count from rng".
	ladders int
	snakes  int
	// maxAttempts bounds rejection sampling per entity.
	maxAttempts int

	err error
}

const defaultMaxAttempts = 1000

// newConfig applies options in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	cfg := config{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLadders fixes the number of ladders; n must lie in [1,15].
func WithLadders(n int) Option {
	return func(c *config) {
		if n < board.MinLadders || n > board.MaxLadders {
			c.err = fmt.Errorf("%w: ladders=%d not in [%d,%d]", ErrOptionViolation, n, board.MinLadders, board.MaxLadders)
			return
		}
		c.ladders = n
	}
}

// WithSnakes fixes the number of snakes; n must lie in [1,15].
func WithSnakes(n int) Option {
	return func(c *config) {
		if n < board.MinSnakes || n > board.MaxSnakes {
			c.err = fmt.Errorf("%w: snakes=%d not in [%d,%d]", ErrOptionViolation, n, board.MinSnakes, board.MaxSnakes)
			return
		}
		c.snakes = n
	}
}

// WithMaxAttempts bounds the number of draws per entity; n must be positive.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: maxAttempts=%d", ErrOptionViolation, n)
			return
		}
		c.maxAttempts = n
	}
}
