package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// IngestResult reports what happened to an inbound webhook
type IngestResult struct {
	Event     *entity.GeofenceEvent
	Duplicate bool
}

// IngestUsecase accepts provider webhooks and forwards them to the decision worker
type IngestUsecase interface {
	// IngestWebhook normalizes the body, drops replays of an already seen event id and publishes the event
	IngestWebhook(ctx context.Context, payload []byte) (*IngestResult, error)
}
