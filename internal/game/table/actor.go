package table

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	StartingStars = 3
	StartingCards = 1
)

// ErrPrecondition marks a caller bug: consuming a card that is not held,
// or asking an actor without cards to play.
var ErrPrecondition = errors.New("precondition violation")

// Hand holds one count per card kind, indexed by Kind.
type Hand [3]int

func (h Hand) Count(k Kind) int { return h[k] }

func (h Hand) Total() int { return h[Stone] + h[Scissor] + h[Paper] }

func (h Hand) String() string {
	return fmt.Sprintf("stone=%d scissor=%d paper=%d", h[Stone], h[Scissor], h[Paper])
}

type handJSON struct {
	Stone   int `json:"stone"`
	Scissor int `json:"scissor"`
	Paper   int `json:"paper"`
}

func (h Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(handJSON{Stone: h[Stone], Scissor: h[Scissor], Paper: h[Paper]})
}

func (h *Hand) UnmarshalJSON(b []byte) error {
	var v handJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*h = Hand{v.Stone, v.Scissor, v.Paper}
	return nil
}

// Actor is a participant. Values are immutable from the outside: every
// change goes through a method that returns the updated actor.
type Actor struct {
	ID   int
	Name string

	hand  Hand
	stars int
}

// NewActor returns an actor with the starting hand and stars.
func NewActor(id int, name string) Actor {
	return Actor{
		ID:    id,
		Name:  name,
		hand:  Hand{StartingCards, StartingCards, StartingCards},
		stars: StartingStars,
	}
}

// RestoreActor rebuilds an actor from recorded values.
func RestoreActor(id int, name string, hand Hand, stars int) Actor {
	return Actor{ID: id, Name: name, hand: hand, stars: stars}
}

func (a Actor) Hand() Hand { return a.hand }

func (a Actor) Count(k Kind) int { return a.hand[k] }

func (a Actor) Holds(k Kind) bool { return a.hand[k] > 0 }

func (a Actor) Total() int { return a.hand.Total() }

func (a Actor) Stars() int { return a.stars }

// CanCompete reports whether the actor holds at least one card.
func (a Actor) CanCompete() bool {
	return a.hand[Stone] > 0 || a.hand[Scissor] > 0 || a.hand[Paper] > 0
}

func (a Actor) AddCard(k Kind) Actor {
	a.hand[k]++
	return a
}

func (a Actor) RemoveCard(k Kind) (Actor, error) {
	if !k.Valid() {
		return a, fmt.Errorf("%w: actor %d: invalid kind %d", ErrPrecondition, a.ID, int(k))
	}
	if a.hand[k] <= 0 {
		return a, fmt.Errorf("%w: actor %d holds no %s", ErrPrecondition, a.ID, k)
	}
	a.hand[k]--
	return a, nil
}

// AddStars returns the actor with delta applied to its star score. The
// score may go negative until elimination runs.
func (a Actor) AddStars(delta int) Actor {
	a.stars += delta
	return a
}

func (a Actor) String() string {
	return fmt.Sprintf("%s#%d(%s stars=%d)", a.Name, a.ID, a.hand, a.stars)
}

type actorJSON struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Hand  Hand   `json:"hand"`
	Stars int    `json:"stars"`
}

func (a Actor) MarshalJSON() ([]byte, error) {
	return json.Marshal(actorJSON{ID: a.ID, Name: a.Name, Hand: a.hand, Stars: a.stars})
}

func (a *Actor) UnmarshalJSON(b []byte) error {
	var v actorJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	for _, k := range Kinds {
		if v.Hand[k] < 0 {
			return fmt.Errorf("actor %d: negative %s count", v.ID, k)
		}
	}
	*a = RestoreActor(v.ID, v.Name, v.Hand, v.Stars)
	return nil
}
