package engine

import (
	"errors"
	"testing"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/table"
)

func TestSelectActionEmptyHand(t *testing.T) {
	a := actor(1, 3, 0, 0, 0)
	tb := tableOf(a, actor(2, 3, 1, 1, 1))

	_, err := SelectAction(tb.Pool, a, &dealer.Script{})
	if !errors.Is(err, table.ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestSelectActionWeightedWalk(t *testing.T) {
	// opponents hold 2 stone, 1 scissor, 1 paper:
	// paper weighs 0.5, stone 0.25, scissor 0.25
	a := actor(1, 3, 1, 1, 1)
	tb := tableOf(a, actor(2, 3, 2, 1, 1))

	cases := []struct {
		draw float64
		want table.Kind
	}{
		{0, table.Paper},
		{0.5, table.Paper},
		{0.6, table.Stone},
		{0.75, table.Stone},
		{0.9, table.Scissor},
		{1, table.Scissor},
	}
	for _, c := range cases {
		src := &dealer.Script{Floats: []float64{c.draw}}
		got, err := SelectAction(tb.Pool, a, src)
		if err != nil {
			t.Fatalf("draw %v: %v", c.draw, err)
		}
		if got != c.want {
			t.Errorf("draw %v: got %s, want %s", c.draw, got, c.want)
		}
	}
}

func TestSelectActionSingleKind(t *testing.T) {
	opp := actor(2, 3, 2, 1, 1)
	for _, k := range table.Kinds {
		h := table.Hand{}
		h[k] = 2
		a := table.RestoreActor(1, "solo", h, 3)
		tb := tableOf(a, opp)

		for _, draw := range []float64{0, 0.3, 1} {
			got, err := SelectAction(tb.Pool, a, &dealer.Script{Floats: []float64{draw}})
			if err != nil {
				t.Fatalf("%s: %v", k, err)
			}
			if got != k {
				t.Errorf("holding only %s, draw %v picked %s", k, draw, got)
			}
		}
	}
}

func TestSelectActionNoOpponentCards(t *testing.T) {
	// every weight is zero and the draw is zero
	cases := []struct {
		hand table.Hand
		want table.Kind
	}{
		{table.Hand{1, 1, 1}, table.Paper},
		{table.Hand{1, 1, 0}, table.Stone},
		{table.Hand{0, 1, 0}, table.Scissor},
	}
	for _, c := range cases {
		a := table.RestoreActor(1, "alone", c.hand, 3)
		tb := tableOf(a, actor(2, 3, 0, 0, 0))
		got, err := SelectAction(tb.Pool, a, &dealer.Script{})
		if err != nil {
			t.Fatalf("%s: %v", c.hand, err)
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.hand, got, c.want)
		}
	}
}

func TestSelectActionAlwaysHeld(t *testing.T) {
	d := dealer.NewDealer(99)
	hands := []table.Hand{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}, {0, 2, 1}, {3, 1, 2}}
	for i := 0; i < 500; i++ {
		h := hands[i%len(hands)]
		a := table.RestoreActor(1, "x", h, 2)
		tb := tableOf(a, actor(2, 3, i%3, (i+1)%4, i%2))

		k, err := SelectAction(tb.Pool, a, d)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if !a.Holds(k) {
			t.Fatalf("iteration %d: picked %s from %s", i, k, h)
		}
	}
}
