package engine

import (
	"errors"
	"fmt"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/table"
)

// ErrUnknownActor is returned when an id is not in the population.
var ErrUnknownActor = errors.New("unknown actor")

// Resolve consumes both played cards and moves one star from the loser to
// the winner. Cards are spent whatever the outcome. The returned outcome is
// from a1's side.
func Resolve(pool table.Pool, a1 table.Actor, c1 table.Kind, a2 table.Actor, c2 table.Kind) (table.Pool, table.Actor, table.Actor, int, error) {
	p, n1, err := table.Consume(pool, a1, c1)
	if err != nil {
		return pool, a1, a2, 0, err
	}
	p, n2, err := table.Consume(p, a2, c2)
	if err != nil {
		return pool, a1, a2, 0, err
	}

	outcome := table.Compare(c1, c2)
	switch outcome {
	case 1:
		n1, n2 = n1.AddStars(1), n2.AddStars(-1)
	case -1:
		n1, n2 = n1.AddStars(-1), n2.AddStars(1)
	}
	return p, n1, n2, outcome, nil
}

// ForcedContest settles a pair with cards chosen by the caller instead of
// the action selector. Both actors must hold their card.
func ForcedContest(t table.Table, aID int, aCard table.Kind, bID int, bCard table.Kind) (table.Table, Event, error) {
	t = t.Clone()
	ev, err := contest(&t, aID, bID,
		func(table.Actor) (table.Kind, error) { return aCard, nil },
		func(table.Actor) (table.Kind, error) { return bCard, nil })
	return t, ev, err
}

func autoContest(t *table.Table, aID, bID int, src dealer.Source) (Event, error) {
	pick := func(a table.Actor) (table.Kind, error) { return SelectAction(t.Pool, a, src) }
	return contest(t, aID, bID, pick, pick)
}

// contest picks both cards against the same pool, then resolves. t only
// changes when the contest succeeds.
func contest(t *table.Table, aID, bID int, pickA, pickB func(table.Actor) (table.Kind, error)) (Event, error) {
	ia, ib := t.Index(aID), t.Index(bID)
	if ia < 0 || ib < 0 || ia == ib {
		return Event{}, fmt.Errorf("%w: contest %d vs %d", ErrUnknownActor, aID, bID)
	}
	a, b := t.Actors[ia], t.Actors[ib]

	ca, err := pickA(a)
	if err != nil {
		return Event{}, err
	}
	cb, err := pickB(b)
	if err != nil {
		return Event{}, err
	}

	pool, na, nb, outcome, err := Resolve(t.Pool, a, ca, b, cb)
	if err != nil {
		return Event{}, err
	}
	t.Pool, t.Actors[ia], t.Actors[ib] = pool, na, nb
	return contestEvent(na, ca, nb, cb, outcome), nil
}
