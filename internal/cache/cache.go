// Package cache keeps the latest evaluation per student in Redis so
// dashboard reloads skip the database. It is write-through on
// evaluation and invalidated on snapshot writes; the insight engine
// itself never caches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edupulse/edupulse/internal/insight"
)

var ErrMiss = errors.New("cache miss")

type EvaluationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *EvaluationCache {
	return &EvaluationCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: ttl,
	}
}

// Key returns the cache key for a student's latest evaluation.
func Key(studentID string) string { return "insight:latest:" + studentID }

func (c *EvaluationCache) GetLatest(ctx context.Context, studentID string) (insight.Evaluation, error) {
	raw, err := c.rdb.Get(ctx, Key(studentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return insight.Evaluation{}, ErrMiss
		}
		return insight.Evaluation{}, err
	}
	var e insight.Evaluation
	if err := json.Unmarshal(raw, &e); err != nil {
		return insight.Evaluation{}, err
	}
	return e, nil
}

func (c *EvaluationCache) SetLatest(ctx context.Context, e insight.Evaluation) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, Key(e.StudentID), raw, c.ttl).Err()
}

func (c *EvaluationCache) Invalidate(ctx context.Context, studentID string) error {
	return c.rdb.Del(ctx, Key(studentID)).Err()
}

func (c *EvaluationCache) Close() error { return c.rdb.Close() }
