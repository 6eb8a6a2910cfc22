// Package pubsub forwards normalized geofence events from the ingest API to the decision worker.
package pubsub

import (
	"strconv"

	"proximity/internal/domain/service"
)

// messageAttributes are the Pub/Sub attributes used for filtering and tracing.
func messageAttributes(msg *service.GeofenceEventMessage) map[string]string {
	attributes := map[string]string{}
	if msg.Event != nil {
		attributes["event_id"] = msg.Event.ID
		attributes["event_type"] = msg.Event.EventType().String()
	}
	if msg.RequestID != "" {
		attributes["request_id"] = msg.RequestID
	}

	return attributes
}

// orderingKey groups one user's events so they reach the worker in publish order.
// Events without any user reference are unordered.
func orderingKey(msg *service.GeofenceEventMessage) string {
	if msg.Event == nil {
		return ""
	}
	if msg.Event.UserID != nil {
		return "user:" + strconv.FormatInt(*msg.Event.UserID, 10)
	}
	if msg.Event.ExternalUserID != "" {
		return "ext:" + msg.Event.ExternalUserID
	}

	return ""
}
