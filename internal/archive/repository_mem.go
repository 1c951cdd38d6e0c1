package archive

import (
	"context"
	"sync"

	"StarGame/internal/game/engine"
)

type memRepo struct {
	mu      sync.Mutex
	results map[string]engine.Result
	rounds  map[string][]engine.RoundReport
}

func NewMemoryRepo() Repo {
	return &memRepo{
		results: make(map[string]engine.Result),
		rounds:  make(map[string][]engine.RoundReport),
	}
}

func (m *memRepo) SaveRound(ctx context.Context, id string, rep engine.RoundReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[id] = append(m.rounds[id], rep)
	return nil
}

func (m *memRepo) SaveResult(ctx context.Context, res engine.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[res.ID] = res
	return nil
}

func (m *memRepo) Result(ctx context.Context, id string) (engine.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.results[id]
	if !ok {
		return engine.Result{}, ErrNotFound
	}
	return res, nil
}

func (m *memRepo) Rounds(ctx context.Context, id string) ([]engine.RoundReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]engine.RoundReport, len(m.rounds[id]))
	copy(out, m.rounds[id])
	return out, nil
}
