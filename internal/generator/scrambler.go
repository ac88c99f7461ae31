// Package generator produces solvable start states for a puzzle model.
package generator

import (
	"context"
	"math/rand"

	"svw.info/npuzzle/internal/domain"
	"svw.info/npuzzle/internal/puzzle"
)

// Scrambler creates start states from a seeded RNG so runs are
// reproducible.
type Scrambler struct {
	Model *puzzle.Puzzle
}

// New wires a scrambler over the given model.
func New(model *puzzle.Puzzle) *Scrambler { return &Scrambler{Model: model} }

// Scramble returns a solvable state. With walk == 0 it draws a uniform
// solvable permutation; with walk > 0 it takes that many random legal
// moves from the goal, which is solvable by construction and bounds the
// optimal solution length by walk.
func (s *Scrambler) Scramble(ctx context.Context, seed int64, walk int) (domain.State, error) {
	rng := rand.New(rand.NewSource(seed))
	if walk <= 0 {
		return s.Model.RandomState(rng)
	}
	state := s.Model.Goal()
	for i := 0; i < walk; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		moves := s.Model.LegalMoves(state)
		state = moves[rng.Intn(len(moves))]
	}
	return state, nil
}
