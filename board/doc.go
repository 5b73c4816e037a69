// Package board models a 100-square Snakes-and-Ladders board.
//
// What
//
//   - Ladder: an immutable (bottom, top) pair; landing on bottom moves the piece up to top.
//   - Snake:  an immutable (mouth, tail) pair; landing on mouth moves the piece down to tail.
//   - Board:  the aggregate of 1..15 ladders and 1..15 snakes, cross-validated once
//     at construction and immutable afterwards.
//
// Every constructor either returns a fully valid value or an error; no
// partially initialised entity is ever observable.
//
// Effect index
//
//	NewBoard builds a dense [MaxSquare+1]Square table mapping each square to the
//	square a piece ends up on after landing there. Effect is a single array
//	read, so the solver can call it once per edge without any map lookups.
//	Because no teleport destination is itself a teleport source, Effect never
//	needs to be applied twice.
//
// Errors
//
//   - ErrOutOfRange          an endpoint lies outside its documented bound.
//   - ErrInvertedRange       bottom ≥ top for a ladder, or mouth ≤ tail for a snake.
//   - ErrCountOutOfRange     fewer than 1 or more than 15 ladders or snakes.
//   - ErrOverlappingEndpoint two specials share a square in a way that would make
//     Effect ambiguous or chained.
//
// All errors are sentinels wrapped with context; test them with errors.Is.
//
// Concurrency
//
//	Ladder, Snake and Board are values with no mutators. A *Board may be shared
//	freely across goroutines.
//
// Usage
//
//	l, err := board.NewLadder(2, 38)
//	s, err := board.NewSnake(99, 10)
//	b, err := board.NewBoard([]board.Ladder{l}, []board.Snake{s})
//	b.Effect(2)  // 38
//	b.Effect(50) // 50
package board
