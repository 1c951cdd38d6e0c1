package engine

import (
	"fmt"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/table"
	"StarGame/internal/matchmaker"
)

// RoundReport is what one round produced besides the new table.
type RoundReport struct {
	Round     int       `json:"round"`
	Competing []int     `json:"competing"`
	Removed   []Removal `json:"-"`
	Events    []Event   `json:"events"`
}

// PlayRound runs matchmaking, contests, elimination and negotiation on a
// copy of in and returns the resulting table. On error in is returned
// untouched.
func PlayRound(in table.Table, round int, src dealer.Source) (table.Table, RoundReport, error) {
	t := in.Clone()
	rep := RoundReport{Round: round}
	emit := func(evs ...Event) {
		for _, ev := range evs {
			ev.Round = round
			rep.Events = append(rep.Events, ev)
		}
	}
	emit(Event{Type: EventRoundStarted, Active: t.Len()})

	// contests
	rep.Competing = matchmaker.CompeteList(matchmaker.CompeteCandidates(t), src)
	for _, p := range matchmaker.Pairs(rep.Competing) {
		ev, err := autoContest(&t, p.A, p.B, src)
		if err != nil {
			return in, rep, fmt.Errorf("round %d: %w", round, err)
		}
		emit(ev)
	}

	// elimination
	t, removed, err := RemoveActors(t)
	if err != nil {
		return in, rep, fmt.Errorf("round %d: %w", round, err)
	}
	rep.Removed = removed
	for _, r := range removed {
		emit(removalEvent(r))
	}

	// negotiation among those left out of the contests
	ids := matchmaker.NegotiateList(matchmaker.NegotiateCandidates(t, rep.Competing), src)
	transfers, err := negotiate(&t, matchmaker.Pairs(ids))
	if err != nil {
		return in, rep, fmt.Errorf("round %d: %w", round, err)
	}
	emit(transfers...)

	emit(Event{Type: EventRoundEnded, Active: t.Len(), Pool: poolSnapshot(t.Pool)})
	return t, rep, nil
}
