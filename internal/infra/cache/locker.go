package cache

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"proximity/internal/domain/service"
	"proximity/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

const (
	userLockKeyPrefix   = "geofence:user-lock:"
	defaultLockTTL      = 10 * time.Second
	lockPollInterval    = 50 * time.Millisecond
	lockPollIntervalCap = 500 * time.Millisecond
)

// releaseScript deletes the lock only while it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewRedisLocker serializes decisions for one user across worker instances.
// A lock expires after ttl even if its holder never releases it.
func NewRedisLocker(client *redis.Client, logger *slog.Logger, ttl time.Duration) service.UserLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &redisLocker{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

func (l *redisLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	key := userLockKeyPrefix + strconv.FormatInt(userID, 10)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	backoff := retry.NewExponential(lockPollInterval)
	backoff = retry.WithCappedDuration(lockPollIntervalCap, backoff)

	err := retry.Do(waitCtx, backoff, func(ctx context.Context) error {
		acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if !acquired {
			return retry.RetryableError(service.ErrLockNotAcquired)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, service.ErrLockNotAcquired) {
			return nil, errors.Wrapf(service.ErrLockNotAcquired, "user %d", userID)
		}

		return nil, errors.Wrap(err, "failed to acquire user lock")
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			// Release with a fresh context so a cancelled request still frees the lock.
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.Warn("Failed to release user lock",
					slog.Int64("user_id", userID),
					slog.Any("error", err),
				)
			}
		})
	}, nil
}

// lockEntry is a one-slot semaphore shared by the goroutines waiting on one user.
type lockEntry struct {
	slot chan struct{}
	refs int
}

type localLocker struct {
	mu      sync.Mutex
	entries map[int64]*lockEntry
}

// NewLocalLocker serializes decisions for one user inside this process.
func NewLocalLocker() service.UserLocker {
	return &localLocker{
		entries: make(map[int64]*lockEntry),
	}
}

func (l *localLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	l.mu.Lock()
	entry, ok := l.entries[userID]
	if !ok {
		entry = &lockEntry{slot: make(chan struct{}, 1)}
		l.entries[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.slot <- struct{}{}:
	case <-ctx.Done():
		l.release(userID, entry, false)

		return nil, errors.Wrapf(errors.Join(service.ErrLockNotAcquired, ctx.Err()), "user %d", userID)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			l.release(userID, entry, true)
		})
	}, nil
}

func (l *localLocker) release(userID int64, entry *lockEntry, held bool) {
	if held {
		<-entry.slot
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, userID)
	}
}
