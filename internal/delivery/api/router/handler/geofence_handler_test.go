package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	mockUC "proximity/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeofenceEcho(geofenceUC *mockUC.MockGeofenceUsecase) *echo.Echo {
	e := newTestEcho()
	h := NewGeofenceHandler(GeofenceHandlerParams{GeofenceUC: geofenceUC, Logger: discardLogger})
	e.GET("/api/v1/geofences/:externalId/provider-payload", h.GetProviderPayload)

	return e
}

func TestGeofenceHandler_GetProviderPayload(t *testing.T) {
	geofenceUC := mockUC.NewMockGeofenceUsecase(t)
	geofenceUC.EXPECT().GetProviderPayload(mock.Anything, "branch_42").Return(&entity.ProviderGeofence{
		ExternalID:  "branch_42",
		Type:        entity.GeofenceTypeCircle,
		Coordinates: [2]float64{121.5654, 25.033},
		Radius:      150,
		Enabled:     true,
		Metadata:    entity.ProviderGeofenceMetadata{GeofenceID: 5},
	}, nil).Once()

	rec := get(newGeofenceEcho(geofenceUC), "/api/v1/geofences/branch_42/provider-payload")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &payload))
	assert.Equal(t, "branch_42", payload["externalId"])
	assert.Equal(t, "circle", payload["type"])
	assert.Equal(t, []any{121.5654, 25.033}, payload["coordinates"])
	assert.InDelta(t, 150.0, payload["radius"], 1e-9)
}

func TestGeofenceHandler_NotFound(t *testing.T) {
	geofenceUC := mockUC.NewMockGeofenceUsecase(t)
	geofenceUC.EXPECT().GetProviderPayload(mock.Anything, "branch_404").
		Return(nil, domainerrors.ErrGeofenceNotFound.WithDetails("branch_404")).Once()

	rec := get(newGeofenceEcho(geofenceUC), "/api/v1/geofences/branch_404/provider-payload")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "GEOFENCE_NOT_FOUND", env.Error.Code)
}
