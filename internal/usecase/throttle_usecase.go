package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// ThrottleUsecase gates notifications against the rate-limit policy and the ledger
type ThrottleUsecase interface {
	// CanSend returns the first failing check, or entity.ReasonNone when sending is allowed.
	// Nil brand, branch or offer ids skip the matching cooldown check.
	CanSend(ctx context.Context, userID int64, brandID, branchID, offerID *int64) (entity.ThrottleReason, error)
}
