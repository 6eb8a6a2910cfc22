package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// EventType is the canonical kind of a geofence crossing.
type EventType string

const (
	EventTypeEntry   EventType = "entry"
	EventTypeExit    EventType = "exit"
	EventTypeDwell   EventType = "dwell"
	EventTypeUnknown EventType = "unknown"
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	return string(t)
}

const (
	externalIDBranchPrefix = "branch_"
	externalIDBrandPrefix  = "brand_"

	metadataBranchID   = "branch_id"
	metadataBrandID    = "brand_id"
	metadataGeofenceID = "geofence_id"
)

// GeofenceEvent is a provider webhook reduced to the fields the decision pipeline needs.
// It lives for a single pipeline run.
type GeofenceEvent struct {
	ID                 string         `json:"id"`                             // Provider event id.
	Kind               string         `json:"kind"`                           // Raw provider type, e.g. "user.entered_geofence".
	ExternalUserID     string         `json:"external_user_id"`               // Provider-side user id.
	UserID             *int64         `json:"user_id,omitempty"`              // Internal user id, when the device reported one.
	GeofenceID         *int64         `json:"geofence_id,omitempty"`          // Local geofence id carried in metadata.
	ProviderGeofenceID string         `json:"provider_geofence_id,omitempty"` // Provider-side geofence id.
	ExternalID         string         `json:"external_id,omitempty"`          // Geofence external id, e.g. "branch_42".
	Tag                string         `json:"tag,omitempty"`
	Latitude           float64        `json:"latitude"`
	Longitude          float64        `json:"longitude"`
	Accuracy           *float64       `json:"accuracy,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	OccurredAt         time.Time      `json:"occurred_at"`
}

// EventType maps the provider kind onto the canonical event type.
func (e *GeofenceEvent) EventType() EventType {
	return EventTypeFromKind(e.Kind)
}

// EventTypeFromKind maps a provider kind string onto an EventType.
// Anything unrecognised is EventTypeUnknown.
func EventTypeFromKind(kind string) EventType {
	switch {
	case strings.Contains(kind, "entered_geofence"):
		return EventTypeEntry
	case strings.Contains(kind, "exited_geofence"):
		return EventTypeExit
	case strings.Contains(kind, "dwelled_in_geofence"):
		return EventTypeDwell
	default:
		return EventTypeUnknown
	}
}

// BranchID resolves the branch from the "branch_<id>" external id, then from metadata.
func (e *GeofenceEvent) BranchID() *int64 {
	return e.resolveID(externalIDBranchPrefix, metadataBranchID)
}

// BrandID resolves the brand from the "brand_<id>" external id, then from metadata.
func (e *GeofenceEvent) BrandID() *int64 {
	return e.resolveID(externalIDBrandPrefix, metadataBrandID)
}

func (e *GeofenceEvent) resolveID(prefix, metadataKey string) *int64 {
	if id, ok := parsePrefixedID(e.ExternalID, prefix); ok {
		return &id
	}

	if id, ok := IntFromAny(e.Metadata[metadataKey]); ok {
		return &id
	}

	return nil
}

// LocalGeofenceID extracts the local geofence id embedded in geofence metadata.
func LocalGeofenceID(metadata map[string]any) *int64 {
	if id, ok := IntFromAny(metadata[metadataGeofenceID]); ok {
		return &id
	}

	return nil
}

func parsePrefixedID(externalID, prefix string) (int64, bool) {
	rest, found := strings.CutPrefix(externalID, prefix)
	if !found || rest == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// IntFromAny converts a loosely typed JSON value into a positive integer id.
func IntFromAny(value any) (int64, bool) {
	var id int64

	switch v := value.(type) {
	case int:
		id = int64(v)
	case int64:
		id = v
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		id = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, false
		}
		id = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		id = parsed
	default:
		return 0, false
	}

	if id <= 0 {
		return 0, false
	}

	return id, true
}
