package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/table"
	"StarGame/internal/utils"
	"StarGame/internal/websocket"
)

// DefaultMaxRounds is the round limit used when none is configured.
const DefaultMaxRounds = 10

type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
	PhaseAborted  Phase = "aborted"
)

// Result is the terminal state of a tournament.
type Result struct {
	ID         string        `json:"id"`
	Seed       int64         `json:"seed"`
	Rounds     int           `json:"rounds"`
	Actors     int           `json:"actors"`
	Safe       []table.Actor `json:"safe"`
	Eliminated []table.Actor `json:"eliminated"`
	Unfinished []table.Actor `json:"unfinished"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// ---------------------
//       ENGINE
// ---------------------

// Engine owns one tournament: the table, the random source and the round
// counter. Rounds run one at a time; readers use Snapshot.
type Engine struct {
	ID        string
	Dealer    dealer.Source
	Hub       websocket.Publisher
	MaxRounds int
	// OnRound receives every batch of events, the closing batch included.
	OnRound func(RoundReport)

	mu     sync.RWMutex
	table  table.Table
	round  int
	phase  Phase
	result Result
}

func NewEngine(id string, t table.Table, src dealer.Source, hub websocket.Publisher, maxRounds int) *Engine {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	e := &Engine{
		ID:        id,
		Dealer:    src,
		Hub:       hub,
		MaxRounds: maxRounds,
		table:     t.Clone(),
		phase:     PhaseWaiting,
	}
	e.result = Result{
		ID:         id,
		Actors:     t.Len(),
		Safe:       []table.Actor{},
		Eliminated: []table.Actor{},
		Unfinished: []table.Actor{},
	}
	if s, ok := src.(interface{ Seed() int64 }); ok {
		e.result.Seed = s.Seed()
	}
	return e
}

// Start moves the engine into the running phase and announces it.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.phase != PhaseWaiting {
		e.mu.Unlock()
		return
	}
	e.phase = PhaseRunning
	e.result.StartedAt = time.Now()
	ev := Event{Type: EventTournamentStarted, Active: e.table.Len(), Pool: poolSnapshot(e.table.Pool)}
	e.mu.Unlock()

	utils.Log.Info("tournament started", "id", e.ID, "actors", ev.Active, "maxRounds", e.MaxRounds)
	e.publish(RoundReport{Events: []Event{ev}})
}

// Done reports whether no further round will be played.
func (e *Engine) Done() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.phase == PhaseFinished || e.phase == PhaseAborted ||
		e.table.Len() == 0 || e.round >= e.MaxRounds
}

// NextRound plays one round.
func (e *Engine) NextRound() (RoundReport, error) {
	e.mu.Lock()
	if e.phase != PhaseRunning {
		e.mu.Unlock()
		return RoundReport{}, fmt.Errorf("tournament %s is %s", e.ID, e.phase)
	}
	next, rep, err := PlayRound(e.table, e.round+1, e.Dealer)
	if err != nil {
		e.mu.Unlock()
		return rep, err
	}
	e.table = next
	e.round++
	for _, r := range rep.Removed {
		switch r.Verdict {
		case Safe:
			e.result.Safe = append(e.result.Safe, r.Actor)
		case Eliminated:
			e.result.Eliminated = append(e.result.Eliminated, r.Actor)
		}
	}
	e.mu.Unlock()

	utils.Log.Debug("round played", "id", e.ID, "round", rep.Round,
		"competing", len(rep.Competing), "removed", len(rep.Removed), "active", next.Len())
	e.publish(rep)
	return rep, nil
}

// Finish eliminates whoever is still playing and closes the tournament.
func (e *Engine) Finish() (Result, error) {
	e.mu.Lock()
	if e.phase == PhaseFinished {
		defer e.mu.Unlock()
		return e.result, nil
	}
	if e.phase == PhaseAborted {
		defer e.mu.Unlock()
		return Result{}, fmt.Errorf("tournament %s is %s", e.ID, e.phase)
	}
	rest, removed, err := retireAll(e.table)
	if err != nil {
		e.mu.Unlock()
		return Result{}, err
	}
	rep := RoundReport{Round: e.round, Removed: removed}
	for _, r := range removed {
		ev := removalEvent(r)
		ev.Round = e.round
		rep.Events = append(rep.Events, ev)
		e.result.Unfinished = append(e.result.Unfinished, r.Actor)
	}
	rep.Events = append(rep.Events, Event{Type: EventTournamentEnded, Round: e.round, Active: 0})

	e.table = rest
	e.phase = PhaseFinished
	e.result.Rounds = e.round
	e.result.FinishedAt = time.Now()
	res := e.result
	e.mu.Unlock()

	utils.Log.Info("tournament finished", "id", e.ID, "rounds", res.Rounds,
		"safe", len(res.Safe), "eliminated", len(res.Eliminated), "unfinished", len(res.Unfinished))
	e.publish(rep)
	return res, nil
}

// Run plays rounds until the population is empty or the round limit is
// reached. ctx is checked between rounds only; a round always completes.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	e.Start()
	for !e.Done() {
		if err := ctx.Err(); err != nil {
			e.abort(err)
			return Result{}, err
		}
		if _, err := e.NextRound(); err != nil {
			utils.Log.Error("round failed", "id", e.ID, "err", err)
			e.abort(err)
			return Result{}, err
		}
	}
	return e.Finish()
}

// abort stops a running tournament without settling the actors still at
// the table. Their state stays visible through Snapshot.
func (e *Engine) abort(cause error) {
	e.mu.Lock()
	if e.phase != PhaseRunning {
		e.mu.Unlock()
		return
	}
	e.phase = PhaseAborted
	e.result.Rounds = e.round
	e.result.FinishedAt = time.Now()
	ev := Event{Type: EventTournamentAborted, Round: e.round, Reason: cause.Error(), Active: e.table.Len()}
	e.mu.Unlock()

	utils.Log.Warn("tournament aborted", "id", e.ID, "round", ev.Round, "active", ev.Active, "err", cause)
	e.publish(RoundReport{Round: ev.Round, Events: []Event{ev}})
}

// Snapshot returns a copy of the current table with the round and phase.
func (e *Engine) Snapshot() (table.Table, int, Phase) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table.Clone(), e.round, e.phase
}

// Result returns the final result once the tournament has finished.
func (e *Engine) Result() (Result, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.result, e.phase == PhaseFinished
}

func (e *Engine) publish(rep RoundReport) {
	if e.OnRound != nil {
		e.OnRound(rep)
	}
	if e.Hub == nil {
		return
	}
	for _, ev := range rep.Events {
		e.Hub.Publish(e.ID, websocket.OutgoingMessage{
			Event: string(ev.Type),
			Data:  ev,
		})
	}
}
