package impl

import (
	"context"

	"proximity/config"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/errors"
	"proximity/internal/usecase"
)

type geofenceService struct {
	bounds       entity.RadiusBounds
	geofenceRepo repository.GeofenceRepository
}

// NewGeofenceService creates a new geofence presentation service
func NewGeofenceService(cfg *config.GeofenceConfig, geofenceRepo repository.GeofenceRepository) usecase.GeofenceUsecase {
	var bounds entity.RadiusBounds
	if cfg != nil {
		bounds = entity.RadiusBounds{
			Default: cfg.DefaultRadius,
			Min:     cfg.MinRadius,
			Max:     cfg.MaxRadius,
		}
	}

	return &geofenceService{
		bounds:       bounds,
		geofenceRepo: geofenceRepo,
	}
}

// GetProviderPayload looks the geofence up by external id and renders it with clamped radius
func (s *geofenceService) GetProviderPayload(ctx context.Context, externalID string) (*entity.ProviderGeofence, error) {
	geofence, err := s.geofenceRepo.FindGeofenceByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound.WithDetails(externalID)
		}

		return nil, errors.Wrap(err, "failed to find geofence")
	}

	return geofence.ToProviderPayload(s.bounds), nil
}
