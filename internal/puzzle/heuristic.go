package puzzle

import (
	"fmt"
	"math"
	"strings"

	"svw.info/npuzzle/internal/domain"
)

// Heuristic estimates the remaining move count from state to goal. Both
// supplied heuristics are admissible and consistent, which the A* engine
// relies on for optimality.
type Heuristic func(state, goal domain.State) int

// Manhattan sums, over all non-blank tiles, the grid distance between the
// tile's position in state and its position in goal.
func Manhattan(state, goal domain.State) int {
	width := int(math.Sqrt(float64(len(state))))
	pos := make([]int, len(goal))
	for i, v := range goal {
		pos[v] = i
	}
	sum := 0
	for i, v := range state {
		if v == 0 {
			continue
		}
		g := pos[v]
		dr := i/width - g/width
		if dr < 0 {
			dr = -dr
		}
		dc := i%width - g%width
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}

// MisplacedTiles counts non-blank tiles that are not in their goal cell.
// Weaker than Manhattan but cheaper per evaluation.
func MisplacedTiles(state, goal domain.State) int {
	count := 0
	for i, v := range state {
		if v != 0 && v != goal[i] {
			count++
		}
	}
	return count
}

// HeuristicByName resolves the heuristics exposed to drivers.
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan", "":
		return Manhattan, nil
	case "misplaced", "misplaced_tiles":
		return MisplacedTiles, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}
