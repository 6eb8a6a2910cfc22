package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// GeofenceUsecase exposes how local geofences are presented to the provider
type GeofenceUsecase interface {
	// GetProviderPayload renders a geofence in the provider wire format
	GetProviderPayload(ctx context.Context, externalID string) (*entity.ProviderGeofence, error)
}
