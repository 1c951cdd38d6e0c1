package engine

import (
	"fmt"

	"StarGame/internal/game/odds"
	"StarGame/internal/game/table"
	"StarGame/internal/matchmaker"
)

// CanGive reports whether a would hand over one card of kind k.
func CanGive(pool table.Pool, a table.Actor, k table.Kind) bool {
	if !a.Holds(k) {
		return false
	}
	if a.Stars() >= SafeStars {
		return true
	}
	after, err := a.RemoveCard(k)
	if err != nil {
		return false
	}
	return odds.CompeteWill(pool.AddCard(k), after) >= odds.CompeteWill(pool, a)
}

// CanReceive reports whether a would accept one card of kind k.
func CanReceive(pool table.Pool, a table.Actor, k table.Kind) bool {
	if a.Stars() >= SafeStars {
		return false
	}
	// The card is modelled as coming out of the pool; an empty slot means
	// no opponent could hand it over.
	after, err := pool.RemoveCard(k)
	if err != nil {
		return false
	}
	return odds.CompeteWill(after, a.AddCard(k)) >= odds.CompeteWill(pool, a)
}

// negotiate applies at most one transfer per kind for every pair. Each
// check sees the hands as left by the previous kind.
func negotiate(t *table.Table, pairs []matchmaker.Pair) ([]Event, error) {
	var events []Event
	for _, p := range pairs {
		i1, i2 := t.Index(p.A), t.Index(p.B)
		if i1 < 0 || i2 < 0 || i1 == i2 {
			return events, fmt.Errorf("%w: negotiation %d with %d", ErrUnknownActor, p.A, p.B)
		}
		for _, k := range table.Kinds {
			a1, a2 := t.Actors[i1], t.Actors[i2]
			var err error
			switch {
			case CanGive(t.Pool, a1, k) && CanReceive(t.Pool, a2, k):
				a1, a2, err = table.Transfer(a1, a2, k)
				if err == nil {
					events = append(events, transferEvent(a1, a2, k))
				}
			case CanGive(t.Pool, a2, k) && CanReceive(t.Pool, a1, k):
				a2, a1, err = table.Transfer(a2, a1, k)
				if err == nil {
					events = append(events, transferEvent(a2, a1, k))
				}
			}
			if err != nil {
				return events, err
			}
			t.Actors[i1], t.Actors[i2] = a1, a2
		}
	}
	return events, nil
}

// Offer hands one card from one actor to another when the receiver
// accepts it. A giver without the card is refused, not an error.
func Offer(t table.Table, fromID, toID int, k table.Kind) (table.Table, bool, error) {
	return directed(t, fromID, toID, k, func(_, to table.Actor) bool {
		return CanReceive(t.Pool, to, k)
	})
}

// Request asks giver fromID for one card for toID; it goes through when
// the giver agrees to part with it.
func Request(t table.Table, fromID, toID int, k table.Kind) (table.Table, bool, error) {
	return directed(t, fromID, toID, k, func(from, _ table.Actor) bool {
		return CanGive(t.Pool, from, k)
	})
}

func directed(t table.Table, fromID, toID int, k table.Kind, accept func(from, to table.Actor) bool) (table.Table, bool, error) {
	if !k.Valid() {
		return t, false, fmt.Errorf("%w: invalid kind %d", table.ErrPrecondition, int(k))
	}
	fi, ti := t.Index(fromID), t.Index(toID)
	if fi < 0 || ti < 0 || fi == ti {
		return t, false, fmt.Errorf("%w: transfer %d to %d", ErrUnknownActor, fromID, toID)
	}
	from, to := t.Actors[fi], t.Actors[ti]
	if !from.Holds(k) || !accept(from, to) {
		return t, false, nil
	}
	nf, nt, err := table.Transfer(from, to, k)
	if err != nil {
		return t, false, err
	}
	t = t.Clone()
	t.Actors[fi], t.Actors[ti] = nf, nt
	return t, true, nil
}
