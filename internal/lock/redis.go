// Package lock provides the cross-process run lock.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotHeld is returned by a release func when the lock expired or was
// taken over before release.
var ErrNotHeld = errors.New("lock not held")

// releaseScript deletes the key only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// NewRedisLockerWithURL connects to the Redis server at url.
func NewRedisLockerWithURL(url string) (*RedisLocker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisLocker{client: redis.NewClient(opts)}, nil
}

func (l *RedisLocker) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// Acquire takes key for ttl. ok is false when another holder has it.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("set lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
		if err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		if n == 0 {
			return ErrNotHeld
		}
		return nil
	}
	return release, true, nil
}
