// Package archive keeps finished tournaments and their round logs for
// later reporting. It is write-once history, not a way to resume a run.
package archive

import (
	"context"
	"errors"

	"StarGame/internal/game/engine"
)

// ErrNotFound is returned when no result is stored under an id.
var ErrNotFound = errors.New("tournament not found")

// Repo stores tournament history.
type Repo interface {
	// SaveRound appends one batch of events to the tournament's log.
	SaveRound(ctx context.Context, id string, rep engine.RoundReport) error
	// SaveResult stores the final result, replacing any previous one.
	SaveResult(ctx context.Context, res engine.Result) error
	// Result returns the stored result or ErrNotFound.
	Result(ctx context.Context, id string) (engine.Result, error)
	// Rounds returns the log in the order it was saved; empty when unknown.
	Rounds(ctx context.Context, id string) ([]engine.RoundReport, error)
}
