package usecase

import (
	"context"
	"errors"

	"svw.info/npuzzle/internal/domain"
	"svw.info/npuzzle/internal/ports"
)

// Service is the facade the adapters talk to; it only forwards to the
// wired providers.
type Service struct {
	Solver    ports.Solver
	Scrambler ports.Scrambler
	Validator ports.Validator
	Hinter    ports.Hinter
	Codec     ports.Codec
}

func NewService(s ports.Solver, sc ports.Scrambler, v ports.Validator, h ports.Hinter, c ports.Codec) *Service {
	return &Service{Solver: s, Scrambler: sc, Validator: v, Hinter: h, Codec: c}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, start domain.State, algo domain.Algorithm, maxExpansions int) (domain.Result, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Result{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, start, algo, maxExpansions)
}

func (u *Service) Scramble(ctx context.Context, seed int64, walk int) (domain.State, error) {
	if u.Scrambler == nil {
		return nil, errNotConfigured
	}
	return u.Scrambler.Scramble(ctx, seed, walk)
}

func (u *Service) Validate(ctx context.Context, text string) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, text)
}

func (u *Service) Hint(ctx context.Context, s domain.State) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, s)
}

func (u *Service) Decode(text string) (domain.State, error) {
	if u.Codec == nil {
		return nil, errNotConfigured
	}
	return u.Codec.Decode(text)
}
