package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"StarGame/internal/archive"
	"StarGame/internal/game/dealer"
	"StarGame/internal/game/engine"
	"StarGame/internal/game/table"
	"StarGame/internal/roster"
	"StarGame/internal/utils"
	"StarGame/internal/websocket"
)

// ErrBadRequest wraps every validation failure of a StartRequest.
var ErrBadRequest = errors.New("bad tournament request")

// StartRequest describes a tournament to run. Zero Seed draws a fresh one;
// empty Names generates numbered actors.
type StartRequest struct {
	Actors int      `json:"actors"`
	Rounds int      `json:"rounds"`
	Seed   int64    `json:"seed"`
	Names  []string `json:"names,omitempty"`
}

// Status is a live view of one tournament.
type Status struct {
	ID     string       `json:"id"`
	Phase  engine.Phase `json:"phase"`
	Round  int          `json:"round"`
	Active int          `json:"active"`
	Pool   table.Hand   `json:"pool"`
	Error  string       `json:"error,omitempty"`
}

type run struct {
	eng  *engine.Engine
	done chan struct{}
	err  error
}

// GameManager owns every tournament started by this process
type GameManager struct {
	mu   sync.RWMutex
	runs map[string]*run // tournament id → run
	hub  websocket.Publisher
	repo archive.Repo

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGameManager wires the manager to a hub (may be nil) and an archive.
func NewGameManager(hub websocket.Publisher, repo archive.Repo) *GameManager {
	if repo == nil {
		repo = archive.NewMemoryRepo()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &GameManager{
		runs:   make(map[string]*run),
		hub:    hub,
		repo:   repo,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Prepare validates req and builds the engine without running it.
func (m *GameManager) Prepare(req StartRequest) (*engine.Engine, error) {
	if req.Actors <= 0 {
		return nil, fmt.Errorf("%w: actors must be positive, got %d", ErrBadRequest, req.Actors)
	}
	if req.Rounds < 0 {
		return nil, fmt.Errorf("%w: rounds must not be negative, got %d", ErrBadRequest, req.Rounds)
	}
	names := req.Names
	if len(names) == 0 {
		names = roster.Numbered(req.Actors)
	}
	t, err := table.New(req.Actors, names)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	seed := req.Seed
	if seed == 0 {
		if seed, err = dealer.NewSeed(); err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	eng := engine.NewEngine(id, t, dealer.NewDealer(seed), m.hub, req.Rounds)
	eng.OnRound = func(rep engine.RoundReport) {
		if err := m.repo.SaveRound(m.ctx, id, rep); err != nil {
			utils.Log.Error("archive round failed", "id", id, "round", rep.Round, "err", err)
		}
	}
	return eng, nil
}

// Start runs a new tournament in the background and returns its id. The
// tournament stays queryable through Status and Result until Close.
func (m *GameManager) Start(req StartRequest) (string, error) {
	eng, err := m.Prepare(req)
	if err != nil {
		return "", err
	}
	if err := m.launch(eng); err != nil {
		return "", err
	}
	return eng.ID, nil
}

func (m *GameManager) launch(eng *engine.Engine) error {
	r := &run{eng: eng, done: make(chan struct{})}

	m.mu.Lock()
	if m.ctx.Err() != nil {
		m.mu.Unlock()
		return errors.New("manager is closed")
	}
	m.runs[eng.ID] = r
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer close(r.done)
		_, r.err = m.play(m.ctx, eng)
	}()
	return nil
}

// Run plays a tournament to the end on the calling goroutine. Observers
// see every batch of events after it is archived.
func (m *GameManager) Run(ctx context.Context, req StartRequest, observers ...func(engine.RoundReport)) (engine.Result, error) {
	eng, err := m.Prepare(req)
	if err != nil {
		return engine.Result{}, err
	}
	if len(observers) > 0 {
		archiveRound := eng.OnRound
		eng.OnRound = func(rep engine.RoundReport) {
			archiveRound(rep)
			for _, fn := range observers {
				fn(rep)
			}
		}
	}
	return m.RunEngine(ctx, eng)
}

// RunEngine plays an engine built by Prepare on the calling goroutine.
// The tournament is live in Status while it plays; once it returns, only
// the archive knows about it.
func (m *GameManager) RunEngine(ctx context.Context, eng *engine.Engine) (engine.Result, error) {
	r := &run{eng: eng, done: make(chan struct{})}
	m.mu.Lock()
	m.runs[eng.ID] = r
	m.mu.Unlock()

	res, err := m.play(ctx, eng)
	r.err = err

	m.mu.Lock()
	delete(m.runs, eng.ID)
	m.mu.Unlock()
	close(r.done)
	return res, err
}

func (m *GameManager) play(ctx context.Context, eng *engine.Engine) (engine.Result, error) {
	start := time.Now()
	res, err := eng.Run(ctx)
	if err != nil {
		return res, err
	}
	if err := m.repo.SaveResult(context.WithoutCancel(ctx), res); err != nil {
		utils.Log.Error("archive result failed", "id", eng.ID, "err", err)
		return res, err
	}
	utils.Log.Debug("tournament archived", "id", eng.ID, "took", time.Since(start))
	return res, nil
}

// Wait blocks until the tournament ends or ctx is done.
func (m *GameManager) Wait(ctx context.Context, id string) (engine.Result, error) {
	m.mu.RLock()
	r, ok := m.runs[id]
	m.mu.RUnlock()
	if !ok {
		return m.repo.Result(ctx, id)
	}
	select {
	case <-r.done:
	case <-ctx.Done():
		return engine.Result{}, ctx.Err()
	}
	if r.err != nil {
		return engine.Result{}, r.err
	}
	res, _ := r.eng.Result()
	return res, nil
}

// Result returns the final result of a finished tournament, from memory
// or from the archive. finished is false while it is still running and
// after it was aborted; Status tells the two apart.
func (m *GameManager) Result(ctx context.Context, id string) (engine.Result, bool, error) {
	m.mu.RLock()
	r, ok := m.runs[id]
	m.mu.RUnlock()
	if ok {
		res, finished := r.eng.Result()
		return res, finished, nil
	}
	res, err := m.repo.Result(ctx, id)
	if err != nil {
		return engine.Result{}, false, err
	}
	return res, true, nil
}

// Rounds returns the archived event batches of a tournament.
func (m *GameManager) Rounds(ctx context.Context, id string) ([]engine.RoundReport, error) {
	return m.repo.Rounds(ctx, id)
}

// Status reports the live state of a tournament known to this process.
func (m *GameManager) Status(id string) (Status, bool) {
	m.mu.RLock()
	r, ok := m.runs[id]
	m.mu.RUnlock()
	if !ok {
		return Status{}, false
	}
	t, round, phase := r.eng.Snapshot()
	st := Status{ID: id, Phase: phase, Round: round, Active: t.Len(), Pool: t.Pool.Counts()}
	select {
	case <-r.done:
		if r.err != nil {
			st.Error = r.err.Error()
		}
	default:
	}
	return st, true
}

// Standings returns the live odds of every actor still playing.
func (m *GameManager) Standings(id string) ([]engine.Standing, bool) {
	m.mu.RLock()
	r, ok := m.runs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	t, _, _ := r.eng.Snapshot()
	return engine.Standings(t), true
}

// Running lists the tournaments that have not finished yet.
func (m *GameManager) Running() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.runs))
	for id, r := range m.runs {
		select {
		case <-r.done:
		default:
			ids = append(ids, id)
		}
	}
	return ids
}

// Close stops background tournaments between rounds and waits for them.
func (m *GameManager) Close() {
	m.mu.Lock()
	m.cancel()
	m.mu.Unlock()
	m.wg.Wait()
}
