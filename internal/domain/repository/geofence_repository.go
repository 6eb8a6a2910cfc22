package repository

import (
	"context"

	"proximity/internal/domain/entity"
	"proximity/internal/errors"
)

// ErrGeofenceNotFound is returned when no live geofence matches the lookup.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceRepository reads geofences that link provider events back to branches and brands.
type GeofenceRepository interface {
	// CreateGeofence persists a geofence after checking its sync invariant.
	CreateGeofence(ctx context.Context, geofence *entity.Geofence) error

	// FindGeofenceByID looks a geofence up by local id.
	FindGeofenceByID(ctx context.Context, id int64) (*entity.Geofence, error)

	// FindGeofenceByExternalID looks a geofence up by its external id, e.g. "branch_42".
	FindGeofenceByExternalID(ctx context.Context, externalID string) (*entity.Geofence, error)

	// FindGeofenceByRadarID looks a geofence up by the provider-side id.
	FindGeofenceByRadarID(ctx context.Context, radarID string) (*entity.Geofence, error)
}
