// Package cache stores encoded calculation responses in Redis. Calculations
// are pure, so an entry never goes stale; the TTL only bounds memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
)

// Store is the cache-aside contract the calculator handlers use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key derives the cache key of an operation from its validated parameters.
func Key(operation string, params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache key marshal error: %w", err)
	}
	return operation + ":" + strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// Config holds cache configuration.
type Config struct {
	RedisAddr string
	Password  string
	DB        int
	Prefix    string
	TTL       time.Duration
}

// StatsSnapshot is a point-in-time copy of the cache counters.
type StatsSnapshot struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Sets   uint64 `json:"sets"`
	Errors uint64 `json:"errors"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s StatsSnapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("hits", s.Hits)
	enc.AddUint64("misses", s.Misses)
	enc.AddUint64("sets", s.Sets)
	enc.AddUint64("errors", s.Errors)
	return nil
}

// Redis is a Store backed by a Redis server.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration

	hits, misses, sets, errs atomic.Uint64
}

// New wraps an existing client.
func New(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Open connects to the configured server and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	c := New(client, cfg.Prefix, cfg.TTL)
	if err := c.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	return c, nil
}

// Get returns the stored value and whether it was found.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.misses.Add(1)
			return nil, false, nil
		}
		c.errs.Add(1)
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	c.hits.Add(1)
	return data, true, nil
}

// Set stores value with the configured TTL.
func (c *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		c.errs.Add(1)
		return fmt.Errorf("cache set error: %w", err)
	}

	c.sets.Add(1)
	return nil
}

// Stats returns the current counters.
func (c *Redis) Stats() StatsSnapshot {
	return StatsSnapshot{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
		Errors: c.errs.Load(),
	}
}

// Ping checks if the Redis connection is healthy.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client connection.
func (c *Redis) Close() error {
	return c.client.Close()
}
