package engine

import (
	"encoding/json"
	"testing"

	"StarGame/internal/game/table"
)

func eventFields(t *testing.T, ev Event) map[string]any {
	t.Helper()
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal %s: %v", ev.Type, err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	return out
}

func TestEventJSONKeepsZeroCounts(t *testing.T) {
	tie := contestEvent(actor(1, 0, 1, 0, 0), table.Stone, actor(2, 0, 1, 0, 0), table.Stone, 0)
	out := removalEvent(Removal{Actor: actor(3, 0, 0, 0, 0), Verdict: Eliminated, Reason: ReasonNoStars})
	end := Event{Type: EventTournamentEnded, Round: 4, Active: 0}

	cases := []struct {
		ev   Event
		keys []string
	}{
		{tie, []string{"outcome", "stars", "otherStars"}},
		{out, []string{"stars"}},
		{end, []string{"active"}},
	}
	for _, c := range cases {
		fields := eventFields(t, c.ev)
		for _, k := range c.keys {
			v, ok := fields[k]
			if !ok {
				t.Errorf("%s: %q missing from %v", c.ev.Type, k, fields)
				continue
			}
			if v != float64(0) {
				t.Errorf("%s: %q = %v, want 0", c.ev.Type, k, v)
			}
		}
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	ev := contestEvent(actor(1, 2, 1, 0, 0), table.Stone, actor(2, 0, 0, 1, 0), table.Scissor, 1)
	ev.Round = 3
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Event
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != ev {
		t.Fatalf("round trip = %+v, want %+v", back, ev)
	}
}

func TestAbortedMessage(t *testing.T) {
	ev := Event{Type: EventTournamentAborted, Round: 2, Reason: "context canceled"}
	if got, want := ev.Message(), "Tournament aborted in round 2: context canceled"; got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
}
