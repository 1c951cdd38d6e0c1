package engine

import (
	"StarGame/internal/game/table"
)

// SafeStars is the score an actor must hold, with an empty hand, to leave
// the game safely. At or above it an actor gives cards freely and refuses
// new ones.
const SafeStars = 3

type Verdict int

const (
	Continue Verdict = iota
	Safe
	Eliminated
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "safe"
	case Eliminated:
		return "eliminated"
	default:
		return "continue"
	}
}

// Check classifies an actor after contests.
func Check(a table.Actor) Verdict {
	if a.Stars() >= SafeStars && a.Total() <= 0 {
		return Safe
	}
	if a.Stars() <= 0 {
		return Eliminated
	}
	return Continue
}

// Removal records an actor leaving the population.
type Removal struct {
	Actor   table.Actor
	Verdict Verdict
	Reason  string
}

// RemoveActors drops every actor that is no longer in play. Verdicts are
// taken from the snapshot t, so one removal never influences another. The
// removed hands leave the pool with their owners.
func RemoveActors(t table.Table) (table.Table, []Removal, error) {
	kept := make([]table.Actor, 0, len(t.Actors))
	pool := t.Pool
	var removed []Removal
	for _, a := range t.Actors {
		v := Check(a)
		if v == Continue {
			kept = append(kept, a)
			continue
		}
		var err error
		if pool, err = pool.Retire(a); err != nil {
			return t, nil, err
		}
		r := Removal{Actor: a, Verdict: v}
		if v == Eliminated {
			r.Reason = ReasonNoStars
		}
		removed = append(removed, r)
	}
	return table.Table{Actors: kept, Pool: pool}, removed, nil
}

// retireAll removes every remaining actor, used when the round limit is hit.
func retireAll(t table.Table) (table.Table, []Removal, error) {
	pool := t.Pool
	removed := make([]Removal, 0, len(t.Actors))
	for _, a := range t.Actors {
		var err error
		if pool, err = pool.Retire(a); err != nil {
			return t, nil, err
		}
		removed = append(removed, Removal{Actor: a, Verdict: Eliminated, Reason: ReasonUnfinished})
	}
	return table.Table{Actors: []table.Actor{}, Pool: pool}, removed, nil
}
