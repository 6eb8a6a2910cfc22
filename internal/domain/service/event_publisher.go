package service

import (
	"context"

	"proximity/internal/domain/entity"
)

// GeofenceEventMessage is a normalized geofence event on its way to the decision worker
type GeofenceEventMessage struct {
	RequestID string                `json:"request_id,omitempty"` // For distributed tracing
	Event     *entity.GeofenceEvent `json:"event"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishGeofenceEvent publishes a geofence event for async processing
	PublishGeofenceEvent(ctx context.Context, msg *GeofenceEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
