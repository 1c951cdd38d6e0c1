package engine

import (
	"fmt"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/odds"
	"StarGame/internal/game/table"
)

// playOrder is the walk order of SelectAction. Changing it changes every
// seeded replay.
var playOrder = [...]table.Kind{table.Paper, table.Stone, table.Scissor}

// SelectAction picks the card a plays. Each held kind is weighted by how
// often opponents hold the kind it beats.
func SelectAction(pool table.Pool, a table.Actor, src dealer.Source) (table.Kind, error) {
	if !a.CanCompete() {
		return 0, fmt.Errorf("%w: actor %d has no card to play", table.ErrPrecondition, a.ID)
	}
	prob := odds.CompetitorProb(pool, a)

	var sum float64
	for _, k := range playOrder {
		if a.Holds(k) {
			sum += prob.Of(k.Beats())
		}
	}
	r := src.Float(sum)

	var acc float64
	for _, k := range playOrder[:2] {
		if !a.Holds(k) {
			continue
		}
		acc += prob.Of(k.Beats())
		if acc >= r {
			return k, nil
		}
	}
	if a.Holds(table.Scissor) {
		return table.Scissor, nil
	}
	return 0, fmt.Errorf("%w: actor %d: no action matched draw %v of %v", table.ErrPrecondition, a.ID, r, sum)
}
