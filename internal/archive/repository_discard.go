package archive

import (
	"context"

	"StarGame/internal/game/engine"
)

type discardRepo struct{}

// NewDiscardRepo returns a Repo that keeps nothing. Result always reports
// ErrNotFound and Rounds is always empty.
func NewDiscardRepo() Repo { return discardRepo{} }

func (discardRepo) SaveRound(ctx context.Context, id string, rep engine.RoundReport) error {
	return nil
}

func (discardRepo) SaveResult(ctx context.Context, res engine.Result) error { return nil }

func (discardRepo) Result(ctx context.Context, id string) (engine.Result, error) {
	return engine.Result{}, ErrNotFound
}

func (discardRepo) Rounds(ctx context.Context, id string) ([]engine.RoundReport, error) {
	return nil, nil
}
