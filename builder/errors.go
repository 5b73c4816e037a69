// SPDX-License-Identifier: MIT
// Package: snakesladders/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Nil RNG is a programmer error and panics in WithRand; everything that
//     can come from user input surfaces as an error.

package builder

import "errors"

// ErrOptionViolation indicates an option value outside its domain
// (e.g. WithLadders(0) or WithSnakes(16)).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNeedRandSource indicates RandomBoard was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the sampler exhausted its attempts without
// placing every ladder and snake on distinct squares.
var ErrConstructFailed = errors.New("builder: construction failed")
