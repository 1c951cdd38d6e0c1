package engine

import (
	"fmt"
	"sync"
	"testing"

	"StarGame/internal/game/table"
	"StarGame/internal/websocket"
)

// mockHub records every published message, per tournament.
type mockHub struct {
	mu       sync.Mutex
	messages map[string][]websocket.OutgoingMessage
}

func newMockHub() *mockHub {
	return &mockHub{messages: make(map[string][]websocket.OutgoingMessage)}
}

func (h *mockHub) Publish(id string, msg websocket.OutgoingMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages[id] = append(h.messages[id], msg)
}

func (h *mockHub) events(id string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.messages[id]))
	for _, m := range h.messages[id] {
		out = append(out, m.Event)
	}
	return out
}

// actor builds an actor holding stone, scissor and paper cards.
func actor(id int, stars, stone, scissor, paper int) table.Actor {
	return table.RestoreActor(id, fmt.Sprintf("A%d", id), table.Hand{stone, scissor, paper}, stars)
}

func tableOf(actors ...table.Actor) table.Table {
	return table.Table{Actors: actors, Pool: table.PoolOf(actors...)}
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Player%03d", i+1)
	}
	return out
}

func newTable(t *testing.T, n int) table.Table {
	t.Helper()
	tb, err := table.New(n, names(n))
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tb
}

func mustActor(t *testing.T, tb table.Table, id int) table.Actor {
	t.Helper()
	a, ok := tb.Actor(id)
	if !ok {
		t.Fatalf("actor %d not found", id)
	}
	return a
}

func totalStars(actors []table.Actor) int {
	n := 0
	for _, a := range actors {
		n += a.Stars()
	}
	return n
}
