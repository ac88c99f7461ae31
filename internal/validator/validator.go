package validator

import (
	"context"

	"svw.info/npuzzle/internal/domain"
)

// FastValidator checks the textual state form for a fixed board size and
// reports the cells whose labels break the permutation invariant.
type FastValidator struct {
	size int
}

func New(size int) *FastValidator { return &FastValidator{size: size} }

// Validate parses text and flags duplicate and out-of-range labels. A
// syntactically unparseable text is an error; semantic violations come
// back as conflict coordinates with ok == false.
func (v *FastValidator) Validate(ctx context.Context, text string) (bool, []domain.CellCoord, error) {
	s, err := domain.ParseLabels(text, v.size)
	if err != nil {
		return false, nil, err
	}
	cells := v.size * v.size
	conf := make([]domain.CellCoord, 0, 4)
	seen := make([]bool, cells)
	for i, label := range s {
		if label < 0 || label >= cells {
			conf = append(conf, domain.CellCoord{Row: i / v.size, Col: i % v.size})
			continue
		}
		if seen[label] {
			conf = append(conf, domain.CellCoord{Row: i / v.size, Col: i % v.size})
			continue
		}
		seen[label] = true
	}
	return len(conf) == 0, conf, nil
}
