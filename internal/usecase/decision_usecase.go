package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// DecisionUsecase runs one geofence event through matching, throttling and dispatch
type DecisionUsecase interface {
	// ProcessEvent drives the event to a terminal status and appends exactly one ledger row.
	// An error is returned only when the ledger could not be read or written.
	ProcessEvent(ctx context.Context, event *entity.GeofenceEvent) (*entity.Decision, error)
}
