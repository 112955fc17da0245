// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

const (
	keyPrefix    = "lighthouse:lock:"
	pollInterval = 100 * time.Millisecond
)

// ErrLockTimeout is returned when the context ends before the lock is free.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// releaseScript deletes the key only if it still holds our token, so an
// expired holder never frees somebody else's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var _ LockerInterface = (*RedisLocker)(nil)

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	ctx, span := l.tracer.Start(ctx, "locking.RedisLocker.Acquire")
	defer span.End()

	k := keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, k, token, l.ttl).Result()
		if err != nil {
			l.setAvailability(0)
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}

		l.setAvailability(1)

		if ok {
			return func() { l.release(k, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", key, ErrLockTimeout)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Errorf("failed to release lock %s: %v", key, err)
	}
}

func (l *RedisLocker) setAvailability(v float64) {
	if err := l.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, v); err != nil {
		l.logger.Debugf("failed to record availability: %v", err)
	}
}

func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// NewRedisLocker parses a redis:// URL, the connection is established lazily.
func NewRedisLocker(url string, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RedisLocker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	l := new(RedisLocker)

	l.client = redis.NewClient(opts)
	l.ttl = ttl

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l, nil
}
