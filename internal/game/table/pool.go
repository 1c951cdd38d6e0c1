package table

import (
	"encoding/json"
	"fmt"
)

// Pool tracks, per kind, the cards held by all active actors.
type Pool struct {
	counts Hand
}

// PoolOf sums the hands of the given actors.
func PoolOf(actors ...Actor) Pool {
	var p Pool
	for _, a := range actors {
		for _, k := range Kinds {
			p.counts[k] += a.hand[k]
		}
	}
	return p
}

func (p Pool) Counts() Hand { return p.counts }

func (p Pool) Count(k Kind) int { return p.counts[k] }

func (p Pool) Total() int { return p.counts.Total() }

func (p Pool) String() string { return p.counts.String() }

func (p Pool) AddCard(k Kind) Pool {
	p.counts[k]++
	return p
}

func (p Pool) RemoveCard(k Kind) (Pool, error) {
	if !k.Valid() {
		return p, fmt.Errorf("%w: pool: invalid kind %d", ErrPrecondition, int(k))
	}
	if p.counts[k] <= 0 {
		return p, fmt.Errorf("%w: pool holds no %s", ErrPrecondition, k)
	}
	p.counts[k]--
	return p, nil
}

// Retire removes an actor's whole hand from the pool.
func (p Pool) Retire(a Actor) (Pool, error) {
	for _, k := range Kinds {
		if p.counts[k] < a.hand[k] {
			return p, fmt.Errorf("%w: pool short of %s retiring actor %d", ErrPrecondition, k, a.ID)
		}
	}
	for _, k := range Kinds {
		p.counts[k] -= a.hand[k]
	}
	return p, nil
}

// Consume removes one card of kind k from both the actor and the pool.
// Either both change or neither does.
func Consume(p Pool, a Actor, k Kind) (Pool, Actor, error) {
	na, err := a.RemoveCard(k)
	if err != nil {
		return p, a, err
	}
	np, err := p.RemoveCard(k)
	if err != nil {
		return p, a, err
	}
	return np, na, nil
}

// Transfer moves one card of kind k between two actors. Pool totals are
// conserved so the pool is not involved.
func Transfer(from, to Actor, k Kind) (Actor, Actor, error) {
	nf, err := from.RemoveCard(k)
	if err != nil {
		return from, to, err
	}
	return nf, to.AddCard(k), nil
}

func (p Pool) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.counts)
}

func (p *Pool) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &p.counts)
}
