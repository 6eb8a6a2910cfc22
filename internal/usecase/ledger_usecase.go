package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// LedgerUsecase exposes the notification ledger to operators
type LedgerUsecase interface {
	// GetUserHistory returns a user's newest decisions first
	GetUserHistory(ctx context.Context, userID int64, limit int) ([]*entity.NotificationThrottleLog, error)

	// GetEventDecisions returns the decisions written for one provider event
	GetEventDecisions(ctx context.Context, eventID string) ([]*entity.NotificationThrottleLog, error)
}
