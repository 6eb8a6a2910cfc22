package entity

import (
	"time"

	"proximity/internal/errors"

	"github.com/paulmach/orb"
)

// GeofenceType is the geometry kind of a geofence.
type GeofenceType string

const (
	GeofenceTypeCircle  GeofenceType = "circle"
	GeofenceTypePolygon GeofenceType = "polygon"
)

// ErrGeofenceSyncedWithoutExternalID is returned when a geofence claims to be synced
// but carries no provider id.
var ErrGeofenceSyncedWithoutExternalID = errors.New("synced geofence must carry a provider geofence id")

// Geofence is a merchant boundary whose crossings produce provider events.
// Geofences are soft-deleted only.
type Geofence struct {
	ID              int64        // Local identifier.
	LocationID      *int64       // Optional grouping location.
	BranchID        *int64       // Branch this geofence was generated from, if any.
	BrandID         *int64       // Brand this geofence belongs to, if any.
	Description     string       // Human readable description sent to the provider.
	Tag             string       // Provider tag used for grouping.
	ExternalID      string       // Provider external id, e.g. "branch_42".
	Type            GeofenceType // circle or polygon.
	Center          orb.Point    // [lng, lat] center for circles.
	Radius          float64      // Radius in meters for circles.
	Polygon         orb.Ring     // Closed ring for polygons.
	IsActive        bool         // Whether the geofence is enabled at the provider.
	SyncedToRadar   bool         // Whether the provider has the latest version.
	RadarGeofenceID *string      // Provider-side id once synced.
	LastSyncedAt    *time.Time   // Timestamp of the last successful sync.
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// Validate checks the sync-state invariant.
func (g *Geofence) Validate() error {
	if g.SyncedToRadar && (g.RadarGeofenceID == nil || *g.RadarGeofenceID == "") {
		return ErrGeofenceSyncedWithoutExternalID
	}

	return nil
}

// RadiusBounds limits circular geofence radii in meters.
type RadiusBounds struct {
	Default float64
	Min     float64
	Max     float64
}

// ClampRadius returns radius within bounds, or the default when radius is unset.
func (b RadiusBounds) ClampRadius(radius float64) float64 {
	if radius <= 0 {
		radius = b.Default
	}
	if b.Min > 0 && radius < b.Min {
		return b.Min
	}
	if b.Max > 0 && radius > b.Max {
		return b.Max
	}

	return radius
}

// ProviderGeofence is the wire format sent to the geofencing provider.
type ProviderGeofence struct {
	Description string                   `json:"description"`
	Tag         string                   `json:"tag"`
	ExternalID  string                   `json:"externalId"`
	Type        GeofenceType             `json:"type"`
	Coordinates any                      `json:"coordinates"`
	Radius      float64                  `json:"radius,omitempty"`
	Enabled     bool                     `json:"enabled"`
	Metadata    ProviderGeofenceMetadata `json:"metadata"`
}

// ProviderGeofenceMetadata links provider events back to local records.
type ProviderGeofenceMetadata struct {
	GeofenceID int64  `json:"geofence_id"`
	LocationID *int64 `json:"location_id"`
	BranchID   *int64 `json:"branch_id"`
	BrandID    *int64 `json:"brand_id"`
}

// ToProviderPayload builds the provider wire format. Circles carry [lng, lat];
// polygons carry their closed ring.
func (g *Geofence) ToProviderPayload(bounds RadiusBounds) *ProviderGeofence {
	payload := &ProviderGeofence{
		Description: g.Description,
		Tag:         g.Tag,
		ExternalID:  g.ExternalID,
		Type:        g.Type,
		Enabled:     g.IsActive,
		Metadata: ProviderGeofenceMetadata{
			GeofenceID: g.ID,
			LocationID: g.LocationID,
			BranchID:   g.BranchID,
			BrandID:    g.BrandID,
		},
	}

	switch g.Type {
	case GeofenceTypePolygon:
		ring := make([][2]float64, 0, len(g.Polygon)+1)
		for _, point := range g.Polygon {
			ring = append(ring, [2]float64{point.Lon(), point.Lat()})
		}
		if !g.Polygon.Closed() && len(g.Polygon) > 0 {
			first := g.Polygon[0]
			ring = append(ring, [2]float64{first.Lon(), first.Lat()})
		}
		payload.Coordinates = ring
	default:
		payload.Type = GeofenceTypeCircle
		payload.Coordinates = [2]float64{g.Center.Lon(), g.Center.Lat()}
		payload.Radius = bounds.ClampRadius(g.Radius)
	}

	return payload
}
