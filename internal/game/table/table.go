package table

import (
	"errors"
	"fmt"
)

// ErrNotEnoughNames is returned when the roster is shorter than the
// requested population.
var ErrNotEnoughNames = errors.New("not enough names for requested actors")

// Table is the active population together with its pool. It is passed by
// value through each round and returned updated.
type Table struct {
	Actors []Actor `json:"actors"`
	Pool   Pool    `json:"pool"`
}

// New seats count actors with ids 1..count, named in roster order.
func New(count int, names []string) (Table, error) {
	if count < 0 {
		return Table{}, fmt.Errorf("invalid actor count %d", count)
	}
	if len(names) < count {
		return Table{}, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughNames, count, len(names))
	}
	actors := make([]Actor, count)
	for i := range actors {
		actors[i] = NewActor(i+1, names[i])
	}
	return Table{Actors: actors, Pool: PoolOf(actors...)}, nil
}

// Clone returns a table that shares no memory with t.
func (t Table) Clone() Table {
	actors := make([]Actor, len(t.Actors))
	copy(actors, t.Actors)
	return Table{Actors: actors, Pool: t.Pool}
}

func (t Table) Len() int { return len(t.Actors) }

// Index returns the position of the actor with the given id, or -1.
func (t Table) Index(id int) int {
	for i, a := range t.Actors {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (t Table) Actor(id int) (Actor, bool) {
	if i := t.Index(id); i >= 0 {
		return t.Actors[i], true
	}
	return Actor{}, false
}

// Verify checks the pool against the actors' hands.
func (t Table) Verify() error {
	seen := make(map[int]struct{}, len(t.Actors))
	for _, a := range t.Actors {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("duplicate actor id %d", a.ID)
		}
		seen[a.ID] = struct{}{}
		for _, k := range Kinds {
			if a.Count(k) < 0 {
				return fmt.Errorf("actor %d: negative %s count", a.ID, k)
			}
		}
	}
	if want := PoolOf(t.Actors...); want != t.Pool {
		return fmt.Errorf("pool %s does not match actors %s", t.Pool, want)
	}
	return nil
}
