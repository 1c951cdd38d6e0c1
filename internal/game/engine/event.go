package engine

import (
	"fmt"

	"StarGame/internal/game/table"
)

type EventType string

const (
	EventTournamentStarted EventType = "TournamentStarted"
	EventRoundStarted      EventType = "RoundStarted"
	EventContestResolved   EventType = "ContestResolved"
	EventActorSafe         EventType = "ActorSafe"
	EventActorEliminated   EventType = "ActorEliminated"
	EventCardTransferred   EventType = "CardTransferred"
	EventRoundEnded        EventType = "RoundEnded"
	EventTournamentEnded   EventType = "TournamentEnded"
	EventTournamentAborted EventType = "TournamentAborted"
)

// Reasons attached to ActorEliminated.
const (
	ReasonNoStars    = "no_stars"
	ReasonUnfinished = "unfinished"
)

// Event is one entry of the log handed to the presentation layer.
//
// ContestResolved: Actor played Card against Other's OtherCard; Outcome is
// from Actor's side (1 win, -1 loss, 0 tie) and the star fields hold the
// scores after the contest. CardTransferred: Actor gave Card to Other.
type Event struct {
	Type       EventType   `json:"type"`
	Round      int         `json:"round"`
	ActorID    int         `json:"actorId,omitempty"`
	Actor      string      `json:"actor,omitempty"`
	OtherID    int         `json:"otherId,omitempty"`
	Other      string      `json:"other,omitempty"`
	Card       string      `json:"card,omitempty"`
	OtherCard  string      `json:"otherCard,omitempty"`
	Outcome    int         `json:"outcome"`
	Stars      int         `json:"stars"`
	OtherStars int         `json:"otherStars"`
	Reason     string      `json:"reason,omitempty"`
	Active     int         `json:"active"`
	Pool       *table.Hand `json:"pool,omitempty"`
}

func contestEvent(a table.Actor, ca table.Kind, b table.Actor, cb table.Kind, outcome int) Event {
	return Event{
		Type:       EventContestResolved,
		ActorID:    a.ID,
		Actor:      a.Name,
		OtherID:    b.ID,
		Other:      b.Name,
		Card:       ca.String(),
		OtherCard:  cb.String(),
		Outcome:    outcome,
		Stars:      a.Stars(),
		OtherStars: b.Stars(),
	}
}

func transferEvent(from, to table.Actor, k table.Kind) Event {
	return Event{
		Type:    EventCardTransferred,
		ActorID: from.ID,
		Actor:   from.Name,
		OtherID: to.ID,
		Other:   to.Name,
		Card:    k.String(),
	}
}

func removalEvent(r Removal) Event {
	ev := Event{ActorID: r.Actor.ID, Actor: r.Actor.Name, Stars: r.Actor.Stars()}
	switch r.Verdict {
	case Safe:
		ev.Type = EventActorSafe
	default:
		ev.Type = EventActorEliminated
		ev.Reason = r.Reason
	}
	return ev
}

func poolSnapshot(p table.Pool) *table.Hand {
	h := p.Counts()
	return &h
}

// Message renders the event as one line of narrative.
func (e Event) Message() string {
	switch e.Type {
	case EventTournamentStarted:
		return fmt.Sprintf("Tournament started with %d actors", e.Active)
	case EventRoundStarted:
		return fmt.Sprintf("Round %d: %d actors remain", e.Round, e.Active)
	case EventContestResolved:
		head := fmt.Sprintf("%s uses %s, %s uses %s", e.Actor, e.Card, e.Other, e.OtherCard)
		switch e.Outcome {
		case 1:
			return head + ": " + e.Actor + " wins"
		case -1:
			return head + ": " + e.Other + " wins"
		}
		return head + ": it's a tie"
	case EventActorSafe:
		return e.Actor + " is safe"
	case EventActorEliminated:
		if e.Reason == ReasonUnfinished {
			return e.Actor + " doesn't finish the game and is eliminated"
		}
		return e.Actor + " is eliminated"
	case EventCardTransferred:
		return fmt.Sprintf("%s gives %s to %s", e.Actor, e.Card, e.Other)
	case EventRoundEnded:
		return fmt.Sprintf("Round %d ended: %d actors remain", e.Round, e.Active)
	case EventTournamentEnded:
		return fmt.Sprintf("Tournament ended after %d rounds", e.Round)
	case EventTournamentAborted:
		return fmt.Sprintf("Tournament aborted in round %d: %s", e.Round, e.Reason)
	}
	return string(e.Type)
}
