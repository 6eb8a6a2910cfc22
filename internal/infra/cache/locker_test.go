package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"proximity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_SerializesSameUser(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := locker.Lock(ctx, 1)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestLocalLocker_DifferentUsersDoNotBlock(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, 1)
	require.NoError(t, err)
	defer unlockA()

	lockCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	unlockB, err := locker.Lock(lockCtx, 2)
	require.NoError(t, err)
	unlockB()
}

func TestLocalLocker_ContextDone(t *testing.T) {
	locker := NewLocalLocker()

	unlock, err := locker.Lock(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, 1)
	require.ErrorIs(t, err, service.ErrLockNotAcquired)

	unlock()
	unlock()

	unlockAgain, err := locker.Lock(context.Background(), 1)
	require.NoError(t, err)
	unlockAgain()

	assert.Empty(t, locker.(*localLocker).entries)
}

func TestNoopDeduplicator(t *testing.T) {
	dedup := NewNoopDeduplicator()
	ctx := context.Background()

	for range 2 {
		claimed, err := dedup.Claim(ctx, "evt_1")
		require.NoError(t, err)
		assert.True(t, claimed)
	}
	assert.NoError(t, dedup.Release(ctx, "evt_1"))
}
