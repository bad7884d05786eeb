package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"svw.info/fitcube/internal/domain"
)

// Redis stores each solution as a JSON string under prefix+"sol:"+id and
// keeps a sorted set of IDs at prefix+"ids", scored by creation time.
type Redis struct {
	client *backend.Client
	prefix string
}

type RedisOption func(*Redis)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

func NewRedis(addr string, db int, opts ...RedisOption) *Redis {
	return NewRedisFromClient(backend.NewClient(&backend.Options{Addr: addr, DB: db}), opts...)
}

func NewRedisFromClient(client *backend.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, prefix: "fitcube:"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) key(id string) string { return r.prefix + "sol:" + id }

func (r *Redis) indexKey() string { return r.prefix + "ids" }

func (r *Redis) Close() error { return r.client.Close() }

func (r *Redis) Save(ctx context.Context, sol *domain.Solution) error {
	if sol == nil || sol.ID == "" {
		return errors.New("invalid solution: missing ID")
	}
	data, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("marshal solution: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(sol.ID), data, 0)
	pipe.ZAdd(ctx, r.indexKey(), backend.Z{Score: float64(sol.CreatedAt), Member: sol.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save to redis: %w", err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context, id string) (*domain.Solution, error) {
	val, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("load from redis: %w", err)
	}
	var out domain.Solution
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, fmt.Errorf("unmarshal solution: %w", err)
	}
	return &out, nil
}

// List walks the index oldest first. IDs whose value has gone are skipped.
func (r *Redis) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	out := []domain.SolutionMeta{}
	for _, id := range ids {
		sol, err := r.Load(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, sol.Meta())
	}
	return out, nil
}
