package puzzle

import (
	"fmt"
	"math/rand"

	"svw.info/npuzzle/internal/domain"
)

// maxRandomDraws bounds the generate-and-retry loop in RandomState. Half
// of all permutations are solvable, so the cap is never hit in practice.
const maxRandomDraws = 64

// Puzzle models an N x N sliding-tile board: the canonical goal, the
// configured start state, move generation and solvability. Everything
// except the start state is read-only after construction.
type Puzzle struct {
	size  int
	cells int
	goal  domain.State
	start domain.State
}

// New builds a puzzle for a size x size board. The goal is tiles
// 1..size*size-1 in row-major order with the blank in the last cell.
func New(size int) (*Puzzle, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidConfiguration, size)
	}
	cells := size * size
	goal := make(domain.State, cells)
	for i := 0; i < cells-1; i++ {
		goal[i] = i + 1
	}
	goal[cells-1] = 0
	return &Puzzle{size: size, cells: cells, goal: goal}, nil
}

// Size returns the board width.
func (p *Puzzle) Size() int { return p.size }

// Goal returns a copy of the canonical solved state.
func (p *Puzzle) Goal() domain.State { return p.goal.Clone() }

// Start returns a copy of the configured start state, or nil if unset.
func (p *Puzzle) Start() domain.State {
	if p.start == nil {
		return nil
	}
	return p.start.Clone()
}

// SetStart installs the start state for subsequent solves. The state must
// be a valid permutation of the board labels; solvability is checked
// later, at solve time.
func (p *Puzzle) SetStart(s domain.State) error {
	if !domain.ValidPermutation(s, p.cells) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidState, []int(s))
	}
	p.start = s.Clone()
	return nil
}

// IsGoal reports whether s equals the canonical solved state.
func (p *Puzzle) IsGoal(s domain.State) bool { return s.Equal(p.goal) }

// Decode parses the textual state form for this board.
func (p *Puzzle) Decode(text string) (domain.State, error) {
	return domain.DecodeState(text, p.size)
}

// IsSolvable applies the inversion parity test. For odd widths the state
// is solvable iff the inversion count among non-blank tiles is even; for
// even widths iff inversions plus the blank's row (counted from the top,
// zero-based) is odd.
func (p *Puzzle) IsSolvable(s domain.State) bool {
	inversions := 0
	for i := 0; i < p.cells-1; i++ {
		if s[i] == 0 {
			continue
		}
		for j := i + 1; j < p.cells; j++ {
			if s[j] != 0 && s[i] > s[j] {
				inversions++
			}
		}
	}
	if p.size%2 == 1 {
		return inversions%2 == 0
	}
	blankRow := s.Blank() / p.size
	return (inversions+blankRow)%2 == 1
}

// Move is a legal transition: the direction the blank travels and the
// resulting state.
type Move struct {
	Dir   domain.Direction
	State domain.State
}

// Moves returns the legal transitions from s in the fixed order up, down,
// left, right. Corners yield 2 moves, edges 3, interior cells 4.
func (p *Puzzle) Moves(s domain.State) []Move {
	blank := s.Blank()
	row, col := blank/p.size, blank%p.size

	swap := func(to int) domain.State {
		next := s.Clone()
		next[blank], next[to] = next[to], next[blank]
		return next
	}

	out := make([]Move, 0, 4)
	if row > 0 {
		out = append(out, Move{Dir: domain.Up, State: swap(blank - p.size)})
	}
	if row < p.size-1 {
		out = append(out, Move{Dir: domain.Down, State: swap(blank + p.size)})
	}
	if col > 0 {
		out = append(out, Move{Dir: domain.Left, State: swap(blank - 1)})
	}
	if col < p.size-1 {
		out = append(out, Move{Dir: domain.Right, State: swap(blank + 1)})
	}
	return out
}

// LegalMoves returns just the successor states of s, in the same
// deterministic order as Moves.
func (p *Puzzle) LegalMoves(s domain.State) []domain.State {
	moves := p.Moves(s)
	out := make([]domain.State, len(moves))
	for i, m := range moves {
		out[i] = m.State
	}
	return out
}

// RandomState draws uniform permutations from rng until one is solvable.
// Rejection sampling keeps the distribution uniform over the solvable
// half of the permutation space.
func (p *Puzzle) RandomState(rng *rand.Rand) (domain.State, error) {
	for i := 0; i < maxRandomDraws; i++ {
		s := make(domain.State, p.cells)
		for j := range s {
			s[j] = j
		}
		rng.Shuffle(p.cells, func(a, b int) { s[a], s[b] = s[b], s[a] })
		if p.IsSolvable(s) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no solvable permutation after %d draws", maxRandomDraws)
}
