package funding_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shelterfund/backend/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// miniredisLocker returns a RedisLocker backed by an in-memory Redis server.
// Keys in miniredis only expire when the server time is fast forwarded.
func miniredisLocker(t *testing.T, ttl time.Duration) (*funding.RedisLocker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	locker := funding.NewRedisLockerWithClient(client, ttl)
	locker.RetryInterval = 5 * time.Millisecond

	return locker, mr
}

func TestRedisLockerExclusive(t *testing.T) {
	locker, mr := miniredisLocker(t, time.Second)
	animal := uuid.New()

	unlock, err := locker.Lock(context.Background(), animal)
	require.NoError(t, err)
	assert.True(t, mr.Exists(locker.Key(animal)))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, animal)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Other animals are not affected
	other, err := locker.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	other()

	unlock()
	assert.False(t, mr.Exists(locker.Key(animal)), "lock is removed on unlock")

	unlock, err = locker.Lock(context.Background(), animal)
	require.NoError(t, err)
	unlock()

	// Calling unlock twice is safe
	unlock()
}

func TestRedisLockerExtendsHeldLock(t *testing.T) {
	locker, mr := miniredisLocker(t, 200*time.Millisecond)
	animal := uuid.New()

	unlock, err := locker.Lock(context.Background(), animal)
	require.NoError(t, err)
	defer unlock()

	key := locker.Key(animal)
	mr.FastForward(150 * time.Millisecond)
	require.LessOrEqual(t, mr.TTL(key), 50*time.Millisecond)

	assert.Eventually(t, func() bool {
		return mr.TTL(key) > 100*time.Millisecond
	}, 2*time.Second, 10*time.Millisecond, "held lock is extended")

	// Past the original expiry, the lock is still held
	mr.FastForward(150 * time.Millisecond)
	assert.True(t, mr.Exists(key))
}

func TestRedisLockerCrashedHolderExpires(t *testing.T) {
	locker, mr := miniredisLocker(t, time.Second)
	animal := uuid.New()
	key := locker.Key(animal)

	// A process that died while holding the lock
	require.NoError(t, mr.Set(key, "crashed-process"))
	mr.SetTTL(key, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := locker.Lock(ctx, animal)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	mr.FastForward(2 * time.Second)

	unlock, err := locker.Lock(context.Background(), animal)
	require.NoError(t, err)
	unlock()
}

func TestRedisLockerReleasesOnlyOwnLock(t *testing.T) {
	locker, mr := miniredisLocker(t, time.Second)
	animal := uuid.New()
	key := locker.Key(animal)

	unlock, err := locker.Lock(context.Background(), animal)
	require.NoError(t, err)

	// The lock expired and another process took it over
	require.NoError(t, mr.Set(key, "other-process"))

	unlock()

	value, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "other-process", value)
}

func TestRedisLockerInvalidTTL(t *testing.T) {
	_, err := funding.NewRedisLocker(context.Background(), "redis://127.0.0.1:1/0", 0)
	assert.ErrorContains(t, err, "must be positive")
}

// TestLedgerWithRedisLocker verifies that a lock held by another process
// is reported as a conflict with the current pool.
func TestLedgerWithRedisLocker(t *testing.T) {
	locker, mr := miniredisLocker(t, time.Second)

	db, err := models.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	animal := models.Animal{Name: "Bella", Species: "Dog"}
	require.NoError(t, db.Create(&animal).Error)
	require.NoError(t, db.Create(&models.Donation{AnimalID: animal.ID, Amount: *cost("100")}).Error)

	ledger := funding.NewLedger(store.Allocations{DB: db}, store.Donations{DB: db},
		funding.WithLocker(locker),
		funding.WithLockTimeout(50*time.Millisecond),
	)

	r, err := ledger.Save(context.Background(), animal.ID, input("40"), nil)
	require.NoError(t, err)
	assert.True(t, r.Pool.Remaining.Equal(*cost("60")))
	assert.False(t, mr.Exists(locker.Key(animal.ID)), "lock is released after the commit")

	require.NoError(t, mr.Set(locker.Key(animal.ID), "other-process"))

	r, err = ledger.Save(context.Background(), animal.ID, input("10"), nil)
	assert.ErrorIs(t, err, funding.ErrConcurrentModification)
	assert.True(t, r.Pool.Remaining.Equal(*cost("60")))
}
