package engine

import (
	"StarGame/internal/game/odds"
	"StarGame/internal/game/table"
)

// Standing is an actor's row in the detailed display.
type Standing struct {
	Actor      table.Actor `json:"actor"`
	Success    float64     `json:"success"`
	Fail       float64     `json:"fail"`
	Will       float64     `json:"will"`
	CanCompete bool        `json:"canCompete"`
}

// Standings lists every active actor in population order.
func Standings(t table.Table) []Standing {
	out := make([]Standing, 0, len(t.Actors))
	for _, a := range t.Actors {
		success := odds.PredictSuccess(t.Pool, a)
		fail := odds.PredictFail(t.Pool, a)
		out = append(out, Standing{
			Actor:      a,
			Success:    success,
			Fail:       fail,
			Will:       success - fail,
			CanCompete: a.CanCompete(),
		})
	}
	return out
}
