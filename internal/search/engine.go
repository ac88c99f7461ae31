// Package search implements the best-first search engine over a puzzle
// model. A*, weighted A* and greedy best-first share one frontier/visited
// loop and differ only in the node priority function.
package search

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"svw.info/npuzzle/internal/domain"
	"svw.info/npuzzle/internal/ports"
	"svw.info/npuzzle/internal/puzzle"
)

// defaultWeight is the heuristic multiplier used by weighted A* unless
// overridden with WithWeight.
const defaultWeight = 2

// Engine consumes a shared puzzle model and a heuristic. It holds no
// search state between calls; every Solve owns its own frontier and
// visited map.
type Engine struct {
	model     *puzzle.Puzzle
	heuristic puzzle.Heuristic
	weight    int
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithWeight sets the heuristic multiplier for weighted A*.
func WithWeight(w int) Option {
	return func(e *Engine) {
		if w >= 1 {
			e.weight = w
		}
	}
}

// NewEngine builds an engine over the given model and heuristic.
func NewEngine(model *puzzle.Puzzle, h puzzle.Heuristic, opts ...Option) *Engine {
	e := &Engine{model: model, heuristic: h, weight: defaultWeight}
	for _, o := range opts {
		o(e)
	}
	return e
}

// priorityFn maps (g, h) to the frontier ordering key for one strategy.
type priorityFn func(g, h int) int

func (e *Engine) priority(algo domain.Algorithm) (priorityFn, error) {
	switch algo {
	case domain.AStar:
		return func(g, h int) int { return g + h }, nil
	case domain.WeightedAStar:
		w := e.weight
		return func(g, h int) int { return g + w*h }, nil
	case domain.GreedyBestFirst:
		return func(_, h int) int { return h }, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm %v", algo)
	}
}

// Solve searches from start to the canonical goal, expanding at most
// maxExpansions nodes. On success the Result path holds the encoded
// states from start to goal inclusive. Hitting the cap yields the
// exhaustion sentinel (Solved false, empty path) with a nil error; only
// malformed input or an unsolvable start is an error.
func (e *Engine) Solve(ctx context.Context, start domain.State, algo domain.Algorithm, maxExpansions int) (domain.Result, ports.Stats, error) {
	began := time.Now()
	if maxExpansions < 1 {
		return domain.Result{}, ports.Stats{}, fmt.Errorf("max expansions must be positive, got %d", maxExpansions)
	}
	prio, err := e.priority(algo)
	if err != nil {
		return domain.Result{}, ports.Stats{}, err
	}
	if !domain.ValidPermutation(start, e.model.Size()*e.model.Size()) {
		return domain.Result{}, ports.Stats{}, fmt.Errorf("%w: %v", domain.ErrInvalidState, []int(start))
	}
	if !e.model.IsSolvable(start) {
		return domain.Result{}, ports.Stats{}, fmt.Errorf("%w: %s", domain.ErrInvalidStart, start.Encode())
	}

	goal := e.model.Goal()
	var seq uint64
	open := make(frontier, 0, 64)
	heap.Init(&open)

	h0 := e.heuristic(start, goal)
	root := &node{state: start, key: start.Encode(), g: 0, h: h0, priority: prio(0, h0)}
	heap.Push(&open, root)

	bestG := map[string]int{root.key: 0}
	closed := make(map[string]bool)
	expanded := 0

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return domain.Result{}, e.stats(expanded, began), ctx.Err()
		default:
		}

		current := heap.Pop(&open).(*node)
		if closed[current.key] {
			continue
		}

		if e.model.IsGoal(current.state) {
			path := reconstruct(current)
			res := domain.Result{
				Path:       path,
				Moves:      len(path) - 1,
				Expansions: expanded,
				Solved:     true,
			}
			return res, e.stats(expanded, began), nil
		}
		if expanded >= maxExpansions {
			return domain.Result{Expansions: expanded}, e.stats(expanded, began), nil
		}

		closed[current.key] = true
		expanded++

		for _, next := range e.model.LegalMoves(current.state) {
			key := next.Encode()
			if closed[key] {
				continue
			}
			g := current.g + 1
			if prev, seen := bestG[key]; seen && g >= prev {
				continue
			}
			bestG[key] = g
			h := e.heuristic(next, goal)
			seq++
			heap.Push(&open, &node{
				state:    next,
				key:      key,
				g:        g,
				h:        h,
				priority: prio(g, h),
				seq:      seq,
				parent:   current,
			})
		}
	}

	// Unreachable for a solvable start, but an emptied frontier is still
	// a terminal non-result rather than a failure.
	return domain.Result{Expansions: expanded}, e.stats(expanded, began), nil
}

// SolveStart runs Solve from the model's configured start state.
func (e *Engine) SolveStart(ctx context.Context, algo domain.Algorithm, maxExpansions int) (domain.Result, ports.Stats, error) {
	start := e.model.Start()
	if start == nil {
		return domain.Result{}, ports.Stats{}, fmt.Errorf("%w: start state not configured", domain.ErrInvalidState)
	}
	return e.Solve(ctx, start, algo, maxExpansions)
}

func (e *Engine) stats(expanded int, began time.Time) ports.Stats {
	return ports.Stats{Expansions: expanded, Duration: time.Since(began)}
}

// reconstruct walks parent links goal-to-start and reverses into the
// encoded start-to-goal path.
func reconstruct(goal *node) []string {
	var path []string
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.key)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
