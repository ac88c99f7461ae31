package domain

import (
	"fmt"
	"strings"
)

// Algorithm selects the search strategy. All strategies share the same
// frontier machinery and differ only in how node priority is computed.
type Algorithm int

const (
	AStar Algorithm = iota
	WeightedAStar
	GreedyBestFirst
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "a_star"
	case WeightedAStar:
		return "weighted_a_star"
	case GreedyBestFirst:
		return "greedy_best_first"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps the loose textual names accepted at the boundary
// onto the closed enum.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a_star", "astar", "a*", "":
		return AStar, nil
	case "weighted_a_star", "weighted", "wa*":
		return WeightedAStar, nil
	case "greedy_best_first", "greedy", "greedy_best_first_search":
		return GreedyBestFirst, nil
	default:
		return AStar, fmt.Errorf("unknown algorithm %q", s)
	}
}

// Direction is the way the blank travels in a move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
