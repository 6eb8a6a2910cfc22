package repository

import (
	"context"
	"time"

	"proximity/internal/domain/entity"
)

// ThrottleLogRepository is the append-only notification ledger.
// Only rows with status sent count towards limits and cooldowns.
type ThrottleLogRepository interface {
	// CreateLog appends one decision row.
	CreateLog(ctx context.Context, log *entity.NotificationThrottleLog) error

	// CountSentSince counts sent rows for the user created at or after since.
	CountSentSince(ctx context.Context, userID int64, since time.Time) (int64, error)

	// LatestSentAt returns the creation time of the user's newest sent row, or nil.
	LatestSentAt(ctx context.Context, userID int64) (*time.Time, error)

	// HasSentSince reports whether a sent row matching scope exists at or after since.
	HasSentSince(ctx context.Context, userID int64, scope entity.ThrottleLogScope, since time.Time) (bool, error)

	// FindLogsByUser returns the user's newest rows first.
	FindLogsByUser(ctx context.Context, userID int64, limit int) ([]*entity.NotificationThrottleLog, error)

	// FindLogsByEvent returns every row written for a provider event id.
	FindLogsByEvent(ctx context.Context, eventID string) ([]*entity.NotificationThrottleLog, error)
}
