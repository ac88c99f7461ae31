package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// State is a board configuration: N*N tile labels in row-major order,
// with 0 marking the blank. States are value objects; every move in the
// model produces a fresh State, so instances are safe to share.
type State []int

// Clone returns an independent copy.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Equal reports position-wise equality.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Blank returns the index of the blank tile, or -1 if absent.
func (s State) Blank() int {
	for i, v := range s {
		if v == 0 {
			return i
		}
	}
	return -1
}

// Encode renders the state in its canonical textual form. Boards with at
// most 10 cells use one decimal digit per tile; larger boards separate
// fields with commas so multi-digit labels stay unambiguous.
func (s State) Encode() string {
	if len(s) <= 10 {
		var b strings.Builder
		b.Grow(len(s))
		for _, v := range s {
			b.WriteByte(byte('0' + v))
		}
		return b.String()
	}
	fields := make([]string, len(s))
	for i, v := range s {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, ",")
}

// ParseLabels parses the textual form for a board of the given width
// without checking that the labels form a permutation. Syntax errors
// (wrong length, non-numeric fields) are reported as ErrInvalidState.
func ParseLabels(text string, size int) (State, error) {
	cells := size * size
	if cells <= 10 {
		if len(text) != cells {
			return nil, fmt.Errorf("%w: want %d digits, got %d", ErrInvalidState, cells, len(text))
		}
		out := make(State, cells)
		for i := 0; i < cells; i++ {
			c := text[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: non-digit %q at position %d", ErrInvalidState, c, i)
			}
			out[i] = int(c - '0')
		}
		return out, nil
	}
	fields := strings.Split(text, ",")
	if len(fields) != cells {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrInvalidState, cells, len(fields))
	}
	out := make(State, cells)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: bad field %q at position %d", ErrInvalidState, f, i)
		}
		out[i] = v
	}
	return out, nil
}

// DecodeState parses and fully validates a state for a board of the given
// width. The round trip DecodeState(s.Encode(), size) is exact for every
// valid state.
func DecodeState(text string, size int) (State, error) {
	s, err := ParseLabels(text, size)
	if err != nil {
		return nil, err
	}
	if !ValidPermutation(s, size*size) {
		return nil, fmt.Errorf("%w: %q is not a permutation of 0..%d", ErrInvalidState, text, size*size-1)
	}
	return s, nil
}

// ValidPermutation reports whether s holds each label in [0, cells)
// exactly once.
func ValidPermutation(s State, cells int) bool {
	if len(s) != cells {
		return false
	}
	seen := make([]bool, cells)
	for _, v := range s {
		if v < 0 || v >= cells || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Result is the outcome of one solve call. Path holds the encoded states
// from start to goal inclusive when Solved is true; on exhaustion Path is
// empty and Expansions records how far the search got before the cap.
type Result struct {
	Path       []string `json:"path,omitempty"`
	Moves      int      `json:"moves"`
	Expansions int      `json:"expansions"`
	Solved     bool     `json:"solved"`
}

// Hint suggests the next move for a position.
type Hint struct {
	Move     string `json:"move"`
	Next     string `json:"next"`
	Estimate int    `json:"estimate"`
}
