package engine

import (
	"testing"

	"StarGame/internal/game/table"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name string
		a    table.Actor
		want Verdict
	}{
		{"three stars no cards", actor(1, 3, 0, 0, 0), Safe},
		{"four stars no cards", actor(1, 4, 0, 0, 0), Safe},
		{"three stars with a card", actor(1, 3, 0, 1, 0), Continue},
		{"zero stars with cards", actor(1, 0, 1, 1, 1), Eliminated},
		{"negative stars", actor(1, -1, 0, 0, 0), Eliminated},
		{"two stars no cards", actor(1, 2, 0, 0, 0), Continue},
		{"starting actor", table.NewActor(1, "new"), Continue},
	}
	for _, c := range cases {
		if got := Check(c.a); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestRemoveActors(t *testing.T) {
	tb := tableOf(
		actor(1, 3, 0, 0, 0), // safe
		actor(2, 2, 1, 0, 1),
		actor(3, 0, 1, 1, 0), // no stars
		actor(4, 4, 0, 1, 0),
		actor(5, 5, 0, 0, 0), // safe
	)

	got, removed, err := RemoveActors(tb)
	if err != nil {
		t.Fatalf("RemoveActors: %v", err)
	}

	var ids []int
	for _, a := range got.Actors {
		ids = append(ids, a.ID)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Fatalf("kept = %v, want [2 4]", ids)
	}

	if len(removed) != 3 {
		t.Fatalf("removed %d actors, want 3", len(removed))
	}
	want := []struct {
		id      int
		verdict Verdict
		reason  string
	}{
		{1, Safe, ""},
		{3, Eliminated, ReasonNoStars},
		{5, Safe, ""},
	}
	for i, w := range want {
		r := removed[i]
		if r.Actor.ID != w.id || r.Verdict != w.verdict || r.Reason != w.reason {
			t.Errorf("removal %d = %d %s %q, want %d %s %q", i, r.Actor.ID, r.Verdict, r.Reason, w.id, w.verdict, w.reason)
		}
	}

	// hands of removed actors leave the pool
	if err := got.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if want := (table.Hand{1, 1, 1}); got.Pool.Counts() != want {
		t.Fatalf("pool = %s, want %s", got.Pool, want)
	}
	if len(tb.Actors) != 5 {
		t.Fatalf("input table changed")
	}
}

func TestRemoveActorsNothingToDo(t *testing.T) {
	tb := newTable(t, 6)
	got, removed, err := RemoveActors(tb)
	if err != nil {
		t.Fatalf("RemoveActors: %v", err)
	}
	if len(removed) != 0 || got.Len() != 6 || got.Pool != tb.Pool {
		t.Fatalf("nothing should change on a fresh table")
	}
}

func TestRetireAll(t *testing.T) {
	tb := tableOf(actor(1, 2, 1, 0, 0), actor(2, 1, 0, 0, 0))
	got, removed, err := retireAll(tb)
	if err != nil {
		t.Fatalf("retireAll: %v", err)
	}
	if got.Len() != 0 || got.Pool.Total() != 0 {
		t.Fatalf("table should be empty, got %d actors pool %s", got.Len(), got.Pool)
	}
	for _, r := range removed {
		if r.Verdict != Eliminated || r.Reason != ReasonUnfinished {
			t.Fatalf("unexpected removal %+v", r)
		}
		if msg := removalEvent(r).Message(); msg != r.Actor.Name+" doesn't finish the game and is eliminated" {
			t.Fatalf("message = %q", msg)
		}
	}
}
