// Package odds estimates how an actor fares against the cards the rest of
// the population still holds.
package odds

import "StarGame/internal/game/table"

// Prob is a per-kind distribution indexed by table.Kind.
type Prob [3]float64

func (p Prob) Of(k table.Kind) float64 { return p[k] }

func (p Prob) Sum() float64 { return p[table.Stone] + p[table.Scissor] + p[table.Paper] }

// CompetitorProb returns the share of each kind among the cards held by
// everyone except a. With no opposing cards left all shares are zero.
func CompetitorProb(pool table.Pool, a table.Actor) Prob {
	var prob Prob
	total := pool.Total() - a.Total()
	if total == 0 {
		return prob
	}
	for _, k := range table.Kinds {
		prob[k] = float64(pool.Count(k)-a.Count(k)) / float64(total)
	}
	return prob
}

// PredictSuccess sums, for every kind a can counter, the squared share of
// that kind. The actor's own play is assumed to follow the same
// distribution as its opponents'.
//
//	beat_stone   = holds(paper)   ? p[stone]^2   : 0
//	beat_scissor = holds(stone)   ? p[scissor]^2 : 0
//	beat_paper   = holds(scissor) ? p[paper]^2   : 0
func PredictSuccess(pool table.Pool, a table.Actor) float64 {
	prob := CompetitorProb(pool, a)
	var success float64
	for _, k := range table.Kinds {
		if a.Holds(k.BeatenBy()) {
			success += prob[k] * prob[k]
		}
	}
	return success
}

// PredictFail is the losing counterpart of PredictSuccess.
//
//	fail_stone   = holds(scissor) ? p[stone]*p[paper]   : 0
//	fail_scissor = holds(paper)   ? p[scissor]*p[stone] : 0
//	fail_paper   = holds(stone)   ? p[paper]*p[scissor] : 0
func PredictFail(pool table.Pool, a table.Actor) float64 {
	prob := CompetitorProb(pool, a)
	var fail float64
	for _, k := range table.Kinds {
		if a.Holds(k.Beats()) {
			fail += prob[k] * prob[k.BeatenBy()]
		}
	}
	return fail
}

// CompeteWill ranks actors in matchmaking and gates negotiation.
func CompeteWill(pool table.Pool, a table.Actor) float64 {
	return PredictSuccess(pool, a) - PredictFail(pool, a)
}
