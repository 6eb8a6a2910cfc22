package usecase

import "proximity/internal/domain/entity"

// EventNormalizer turns provider webhook payloads into canonical geofence events
type EventNormalizer interface {
	// Normalize parses a raw webhook body. Only a body that is not a JSON object is an error;
	// every missing or malformed field degrades to a default.
	Normalize(payload []byte) (*entity.GeofenceEvent, error)

	// NormalizeMap builds an event from an already decoded webhook body
	NormalizeMap(raw map[string]any) *entity.GeofenceEvent
}
