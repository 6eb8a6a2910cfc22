package service

import (
	"context"

	"proximity/internal/errors"
)

// ErrLockNotAcquired is returned when a user's lock is still held after waiting.
var ErrLockNotAcquired = errors.New("user lock not acquired")

// UserLocker serializes the throttle read, check and ledger append for one user.
type UserLocker interface {
	// Lock blocks until the user's lock is held or ctx is done.
	// The returned func releases the lock and is safe to call once.
	Lock(ctx context.Context, userID int64) (unlock func(), err error)
}
