// SPDX-License-Identifier: MIT

package board

import "errors"

// Sentinel errors for entity and board construction.
// Constructors wrap them with the offending values; match with errors.Is.
var (
	// ErrOutOfRange indicates a ladder or snake endpoint outside its documented bound.
	ErrOutOfRange = errors.New("board: square out of range")

	// ErrInvertedRange indicates a ladder with bottom ≥ top or a snake with mouth ≤ tail.
	ErrInvertedRange = errors.New("board: inverted range")

	// ErrCountOutOfRange indicates a ladder or snake collection outside [1,15].
	ErrCountOutOfRange = errors.New("board: count out of range")

	// ErrOverlappingEndpoint indicates two specials sharing a square so that
	// the landing effect would be ambiguous or chained.
	ErrOverlappingEndpoint = errors.New("board: overlapping endpoint")
)
