package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"StarGame/internal/game/engine"
)

type redisRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisRepo stores history in Redis. A zero ttl keeps keys forever.
func NewRedisRepo(rdb *redis.Client, ttl time.Duration) Repo {
	return &redisRepo{rdb: rdb, ttl: ttl}
}

// key layout:
//
//	string: sg:result:{id}  -> JSON engine.Result
//	list  : sg:rounds:{id}  -> JSON engine.RoundReport, one per batch
func resultKey(id string) string {
	return fmt.Sprintf("sg:result:%s", id)
}

func roundsKey(id string) string {
	return fmt.Sprintf("sg:rounds:%s", id)
}

func (r *redisRepo) SaveRound(ctx context.Context, id string, rep engine.RoundReport) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode round %d of %s: %w", rep.Round, id, err)
	}
	p := r.rdb.Pipeline()
	p.RPush(ctx, roundsKey(id), data)
	if r.ttl > 0 {
		p.Expire(ctx, roundsKey(id), r.ttl)
	}
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) SaveResult(ctx context.Context, res engine.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result %s: %w", res.ID, err)
	}
	p := r.rdb.Pipeline()
	p.Set(ctx, resultKey(res.ID), data, r.ttl)
	if r.ttl > 0 {
		p.Expire(ctx, roundsKey(res.ID), r.ttl)
	}
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Result(ctx context.Context, id string) (engine.Result, error) {
	data, err := r.rdb.Get(ctx, resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
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

func (r *redisRepo) Rounds(ctx context.Context, id string) ([]engine.RoundReport, error) {
	items, err := r.rdb.LRange(ctx, roundsKey(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]engine.RoundReport, 0, len(items))
	for i, item := range items {
		var rep engine.RoundReport
		if err := json.Unmarshal([]byte(item), &rep); err != nil {
			return nil, fmt.Errorf("decode round entry %d of %s: %w", i, id, err)
		}
		out = append(out, rep)
	}
	return out, nil
}
