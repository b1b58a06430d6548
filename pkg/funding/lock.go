package funding

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Locker serializes changes to the allocations of one animal.
//
// Lock blocks until the lock is held or ctx is done. The returned function
// releases the lock.
type Locker interface {
	Lock(ctx context.Context, animalID uuid.UUID) (unlock func(), err error)
}

// SemaphoreLocker is an in-process Locker with one weighted semaphore per
// animal. Semaphores are dropped when nobody holds or waits for them.
type SemaphoreLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*animalLock
}

type animalLock struct {
	sem  *semaphore.Weighted
	refs int
}

func NewSemaphoreLocker() *SemaphoreLocker {
	return &SemaphoreLocker{
		locks: make(map[uuid.UUID]*animalLock),
	}
}

func (l *SemaphoreLocker) Lock(ctx context.Context, animalID uuid.UUID) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[animalID]
	if !ok {
		lock = &animalLock{sem: semaphore.NewWeighted(1)}
		l.locks[animalID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	if err := lock.sem.Acquire(ctx, 1); err != nil {
		l.release(animalID, lock, false)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.release(animalID, lock, true)
		})
	}, nil
}

func (l *SemaphoreLocker) release(animalID uuid.UUID, lock *animalLock, acquired bool) {
	if acquired {
		lock.sem.Release(1)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, animalID)
	}
}

// held returns the number of animals with a lock that is held or waited for.
func (l *SemaphoreLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
