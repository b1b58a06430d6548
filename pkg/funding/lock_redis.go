package funding

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisLocker is a Locker for deployments with more than one backend
// process.
//
// A held lock is extended every TTL/2 until it is released, so a slow commit
// keeps it. If the holding process dies, the lock expires after TTL.
type RedisLocker struct {
	Client        redis.UniversalClient
	Prefix        string
	TTL           time.Duration
	RetryInterval time.Duration

	rs *redsync.Redsync
}

// NewRedisLocker connects to the Redis server at url and verifies the connection.
func NewRedisLocker(ctx context.Context, url string, ttl time.Duration) (*RedisLocker, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid lock TTL %v: must be positive", ttl)
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedisLockerWithClient(client, ttl), nil
}

// NewRedisLockerWithClient returns a RedisLocker using an existing client.
// ttl must be positive.
func NewRedisLockerWithClient(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		Client:        client,
		Prefix:        "shelterfund:funding-lock:",
		TTL:           ttl,
		RetryInterval: 25 * time.Millisecond,
		rs:            redsync.New(goredis.NewPool(client)),
	}
}

// Key returns the Redis key of the lock for an animal.
func (l *RedisLocker) Key(animalID uuid.UUID) string {
	return l.Prefix + animalID.String()
}

func (l *RedisLocker) Lock(ctx context.Context, animalID uuid.UUID) (func(), error) {
	// Retries are bounded by ctx, not by a number of tries
	mutex := l.rs.NewMutex(
		l.Key(animalID),
		redsync.WithExpiry(l.TTL),
		redsync.WithTries(math.MaxInt32),
		redsync.WithRetryDelay(l.RetryInterval),
	)

	if err := mutex.LockContext(ctx); err != nil {
		// redsync reports a done context as a failed acquisition
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("could not acquire lock for animal %s: %w", animalID, err)
	}

	stop := make(chan struct{})
	stopped := make(chan struct{})
	go l.keepAlive(mutex, animalID, stop, stopped)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-stopped

			// The request context may already be done, the lock must be released anyway
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if ok, err := mutex.UnlockContext(ctx); !ok || err != nil {
				log.Error().Err(err).Bool("unlock_ok", ok).Str("animal", animalID.String()).Msg("could not release funding lock")
			}
		})
	}, nil
}

// keepAlive extends the lock every TTL/2 until stop is closed or the lock
// was lost.
func (l *RedisLocker) keepAlive(mutex *redsync.Mutex, animalID uuid.UUID, stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(l.TTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), l.TTL/2)
			ok, err := mutex.ExtendContext(ctx)
			cancel()

			if !ok || err != nil {
				log.Error().Err(err).Str("animal", animalID.String()).Msg("funding lock lost, it could not be extended")
				return
			}
		}
	}
}

// Close closes the connection to Redis.
func (l *RedisLocker) Close() error {
	return l.Client.Close()
}
