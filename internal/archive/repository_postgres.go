package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"StarGame/internal/game/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS tournament_results (
	id          TEXT PRIMARY KEY,
	seed        BIGINT NOT NULL,
	rounds      INTEGER NOT NULL,
	actors      INTEGER NOT NULL,
	body        JSONB NOT NULL,
	started_at  TIMESTAMPTZ,
	finished_at TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS tournament_events (
	seq           BIGSERIAL PRIMARY KEY,
	tournament_id TEXT NOT NULL,
	round         INTEGER NOT NULL,
	body          JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS tournament_events_tournament_idx ON tournament_events (tournament_id, seq);
`

type pgRepo struct {
	db *sql.DB
}

// NewPostgresRepo stores history in Postgres. The driver is registered by
// the storage package.
func NewPostgresRepo(db *sql.DB) Repo {
	return &pgRepo{db: db}
}

// Migrate creates the archive tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate archive: %w", err)
	}
	return nil
}

func (r *pgRepo) SaveRound(ctx context.Context, id string, rep engine.RoundReport) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode round %d of %s: %w", rep.Round, id, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO tournament_events (tournament_id, round, body) VALUES ($1, $2, $3)`,
		id, rep.Round, data)
	return err
}

func (r *pgRepo) SaveResult(ctx context.Context, res engine.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result %s: %w", res.ID, err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO tournament_results (id, seed, rounds, actors, body, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	seed = EXCLUDED.seed, rounds = EXCLUDED.rounds, actors = EXCLUDED.actors,
	body = EXCLUDED.body, started_at = EXCLUDED.started_at, finished_at = EXCLUDED.finished_at`,
		res.ID, res.Seed, res.Rounds, res.Actors, data, res.StartedAt, res.FinishedAt)
	return err
}

func (r *pgRepo) Result(ctx context.Context, id string) (engine.Result, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT body FROM tournament_results WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Result{}, ErrNotFound
	}
	if err != nil {
		return engine.Result{}, err
	}
	var res engine.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return engine.Result{}, fmt.Errorf("decode result %s: %w", id, err)
	}
	return res, nil
}

func (r *pgRepo) Rounds(ctx context.Context, id string) ([]engine.RoundReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT body FROM tournament_events WHERE tournament_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []engine.RoundReport{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rep engine.RoundReport
		if err := json.Unmarshal(data, &rep); err != nil {
			return nil, fmt.Errorf("decode round of %s: %w", id, err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
