package ports

import (
	"context"
	"time"

	"svw.info/npuzzle/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Expansions int
	Duration   time.Duration
}

// Solver runs a bounded best-first search from an explicit start state.
// Reaching the expansion cap is a normal Result, not an error.
type Solver interface {
	Solve(ctx context.Context, start domain.State, algo domain.Algorithm, maxExpansions int) (domain.Result, Stats, error)
}

// Scrambler produces solvable start states. walk == 0 draws a uniform
// solvable permutation; walk > 0 takes that many random legal moves
// backwards from the goal, bounding solution depth.
type Scrambler interface {
	Scramble(ctx context.Context, seed int64, walk int) (domain.State, error)
}

// Validator checks the textual state form and reports the cells holding
// duplicate or out-of-range labels.
type Validator interface {
	Validate(ctx context.Context, text string) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter suggests the next move for a position.
type Hinter interface {
	Hint(ctx context.Context, s domain.State) (domain.Hint, bool, error)
}

// Codec converts between states and their textual form.
type Codec interface {
	Decode(text string) (domain.State, error)
}
