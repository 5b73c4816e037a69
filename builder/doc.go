// Package builder generates random, always-valid Snakes-and-Ladders boards.
//
// Boards are drawn by rejection sampling: each ladder and snake is sampled
// within its documented bounds and rejected if it reuses a square already
// taken by another endpoint. Keeping every endpoint distinct satisfies all of
// board.NewBoard's cross-validation rules at once.
//
// Determinism
//
//	Randomness flows only through the *rand.Rand supplied with WithSeed or
//	WithRand. The same seed and options always yield the same board, which
//	makes generated boards usable as golden fixtures and benchmark inputs.
//
// Usage
//
//	b, err := builder.RandomBoard(
//	    builder.WithSeed(42),
//	    builder.WithLadders(5),
//	    builder.WithSnakes(7),
//	)
package builder
