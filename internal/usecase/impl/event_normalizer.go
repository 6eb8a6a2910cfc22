package impl

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"
	"proximity/internal/errors"
	"proximity/internal/usecase"
)

// ErrMalformedPayload is returned when a webhook body is not a JSON object
var ErrMalformedPayload = errors.New("webhook payload is not a JSON object")

var timestampKeys = []string{"createdAt", "actualCreatedAt", "occurred_at"}

const (
	// maxEventIDLength matches the ledger's event_id column
	maxEventIDLength = 255
	// eventIDPrefixLength leaves room for "~" and a hex sha256 suffix
	eventIDPrefixLength = maxEventIDLength - 1 - sha256.Size*2
)

type eventNormalizer struct {
	clock service.Clock
}

// NewEventNormalizer creates a normalizer that falls back to clock for missing timestamps
func NewEventNormalizer(clock service.Clock) usecase.EventNormalizer {
	return &eventNormalizer{
		clock: clock,
	}
}

// Normalize parses a raw webhook body into a GeofenceEvent
func (n *eventNormalizer) Normalize(payload []byte) (*entity.GeofenceEvent, error) {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, err.Error())
	}
	if raw == nil {
		return nil, errors.WithStack(ErrMalformedPayload)
	}

	return n.NormalizeMap(raw), nil
}

// NormalizeMap accepts either {"event": {...}} or the event object itself
func (n *eventNormalizer) NormalizeMap(raw map[string]any) *entity.GeofenceEvent {
	body := raw
	if nested, ok := raw["event"].(map[string]any); ok {
		body = nested
	}

	user := objectField(body, "user")
	geofence := objectField(body, "geofence")
	location := objectField(body, "location")
	metadata := objectField(geofence, "metadata")

	event := &entity.GeofenceEvent{
		ID:                 boundedEventID(firstString(body, "_id", "id")),
		Kind:               stringField(body, "type"),
		ExternalUserID:     stringField(user, "_id"),
		UserID:             resolveUserID(user),
		GeofenceID:         entity.LocalGeofenceID(metadata),
		ProviderGeofenceID: stringField(geofence, "_id"),
		ExternalID:         stringField(geofence, "externalId"),
		Tag:                stringField(geofence, "tag"),
		Accuracy:           resolveAccuracy(body, location),
		Metadata:           metadata,
		OccurredAt:         n.resolveOccurredAt(body),
	}
	event.Latitude, event.Longitude = resolveCoordinates(body, location)

	return event
}

func (n *eventNormalizer) resolveOccurredAt(body map[string]any) time.Time {
	for _, key := range timestampKeys {
		value := stringField(body, key)
		if value == "" {
			continue
		}
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed.UTC()
		}
	}

	return n.clock.Now().UTC()
}

// boundedEventID keeps ids that fit the ledger column and shortens longer ones
// to a prefix plus their hash, so the same oversized id always maps to the same value.
func boundedEventID(id string) string {
	if len(id) <= maxEventIDLength {
		return id
	}

	sum := sha256.Sum256([]byte(id))

	return strings.ToValidUTF8(id[:eventIDPrefixLength], "") + "~" + hex.EncodeToString(sum[:])
}

// resolveCoordinates prefers the GeoJSON [lng, lat] pair, then named fields on the location and the event.
// A pair outside the WGS84 range is skipped like a missing one.
func resolveCoordinates(body, location map[string]any) (lat, lng float64) {
	if coords, ok := location["coordinates"].([]any); ok && len(coords) >= 2 {
		lngValue, lngOK := floatFromAny(coords[0])
		latValue, latOK := floatFromAny(coords[1])
		if lngOK && latOK && validCoordinate(latValue, lngValue) {
			return latValue, lngValue
		}
	}

	for _, source := range []map[string]any{location, body} {
		latValue, latOK := floatFromAny(source["latitude"])
		lngValue, lngOK := floatFromAny(source["longitude"])
		if latOK && lngOK && validCoordinate(latValue, lngValue) {
			return latValue, lngValue
		}
	}

	return 0, 0
}

func validCoordinate(lat, lng float64) bool {
	return math.Abs(lat) <= 90 && math.Abs(lng) <= 180
}

func resolveAccuracy(body, location map[string]any) *float64 {
	if accuracy, ok := floatFromAny(location["accuracy"]); ok {
		return &accuracy
	}
	if accuracy, ok := floatFromAny(body["locationAccuracy"]); ok {
		return &accuracy
	}

	return nil
}

func resolveUserID(user map[string]any) *int64 {
	if id, ok := entity.IntFromAny(user["userId"]); ok {
		return &id
	}
	if id, ok := entity.IntFromAny(objectField(user, "metadata")["user_id"]); ok {
		return &id
	}

	return nil
}

func objectField(source map[string]any, key string) map[string]any {
	if value, ok := source[key].(map[string]any); ok {
		return value
	}

	return nil
}

func stringField(source map[string]any, key string) string {
	switch value := source[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case json.Number:
		return value.String()
	default:
		return ""
	}
}

func firstString(source map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := stringField(source, key); value != "" {
			return value
		}
	}

	return ""
}

// floatFromAny reads finite numbers only; NaN and Inf count as missing.
func floatFromAny(value any) (float64, bool) {
	parsed, ok := parseFloat(value)
	if !ok || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}

	return parsed, true
}

func parseFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()

		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		return parsed, err == nil
	default:
		return 0, false
	}
}
