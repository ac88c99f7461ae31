package domain

import "errors"

var (
	// ErrInvalidConfiguration rejects board sizes below 2 at construction.
	ErrInvalidConfiguration = errors.New("invalid configuration: board size must be at least 2")
	// ErrInvalidState rejects sequences that are not a permutation of the
	// board's labels, whether passed directly or decoded from text.
	ErrInvalidState = errors.New("invalid state: not a permutation of the board labels")
	// ErrInvalidStart rejects well-formed but unsolvable start states
	// before any search work is done.
	ErrInvalidStart = errors.New("invalid start: state is not solvable")
)
