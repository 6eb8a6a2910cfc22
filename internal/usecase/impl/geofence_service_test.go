package impl

import (
	"context"
	"errors"
	"testing"

	"proximity/config"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	mockRepo "proximity/internal/mocks/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeofenceService_GetProviderPayloadClampsRadius(t *testing.T) {
	ctx := context.Background()
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	geofenceRepo.EXPECT().FindGeofenceByExternalID(ctx, "branch_42").Return(&entity.Geofence{
		ID:         5,
		BranchID:   ptrInt64(42),
		ExternalID: "branch_42",
		Tag:        "branch",
		Type:       entity.GeofenceTypeCircle,
		Center:     orb.Point{121.5654, 25.033},
		Radius:     5000,
		IsActive:   true,
	}, nil).Once()

	svc := NewGeofenceService(&config.GeofenceConfig{DefaultRadius: 100, MinRadius: 50, MaxRadius: 1000}, geofenceRepo)

	payload, err := svc.GetProviderPayload(ctx, "branch_42")
	require.NoError(t, err)
	assert.Equal(t, entity.GeofenceTypeCircle, payload.Type)
	assert.Equal(t, [2]float64{121.5654, 25.033}, payload.Coordinates)
	assert.InDelta(t, 1000.0, payload.Radius, 1e-9)
	assert.True(t, payload.Enabled)
	assert.Equal(t, int64(5), payload.Metadata.GeofenceID)
	assert.Equal(t, ptrInt64(42), payload.Metadata.BranchID)
}

func TestGeofenceService_GetProviderPayloadNotFound(t *testing.T) {
	ctx := context.Background()
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	geofenceRepo.EXPECT().FindGeofenceByExternalID(ctx, "branch_404").Return(nil, repository.ErrGeofenceNotFound).Once()

	svc := NewGeofenceService(nil, geofenceRepo)

	payload, err := svc.GetProviderPayload(ctx, "branch_404")
	assert.Nil(t, payload)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GEOFENCE_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "branch_404", appErr.Details())
}

func TestGeofenceService_GetProviderPayloadRepositoryError(t *testing.T) {
	ctx := context.Background()
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	dbErr := errors.New("connection refused")
	geofenceRepo.EXPECT().FindGeofenceByExternalID(ctx, "branch_1").Return(nil, dbErr).Once()

	svc := NewGeofenceService(nil, geofenceRepo)

	_, err := svc.GetProviderPayload(ctx, "branch_1")
	assert.ErrorIs(t, err, dbErr)
}
