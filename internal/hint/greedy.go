// Package hint suggests a next move by one-step heuristic lookahead.
package hint

import (
	"context"

	"svw.info/npuzzle/internal/domain"
	"svw.info/npuzzle/internal/puzzle"
)

// Greedy picks the successor with the lowest heuristic estimate; ties go
// to the model's fixed move order.
type Greedy struct {
	Model     *puzzle.Puzzle
	Heuristic puzzle.Heuristic
}

func NewGreedy(model *puzzle.Puzzle, h puzzle.Heuristic) *Greedy {
	return &Greedy{Model: model, Heuristic: h}
}

// Hint returns the suggested move, or found == false for a solved board.
func (g *Greedy) Hint(ctx context.Context, s domain.State) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	if g.Model.IsGoal(s) {
		return domain.Hint{}, false, nil
	}
	goal := g.Model.Goal()
	var best *puzzle.Move
	bestH := 0
	for _, m := range g.Model.Moves(s) {
		m := m
		h := g.Heuristic(m.State, goal)
		if best == nil || h < bestH {
			best = &m
			bestH = h
		}
	}
	return domain.Hint{
		Move:     best.Dir.String(),
		Next:     best.State.Encode(),
		Estimate: bestH,
	}, true, nil
}
