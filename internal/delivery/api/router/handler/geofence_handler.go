package handler

import (
	"log/slog"
	"net/http"

	"proximity/internal/delivery/api/response"
	"proximity/internal/errors"
	"proximity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler exposes geofences in the provider wire format
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// ProviderPayloadRequest binds GET /api/v1/geofences/:externalId/provider-payload
type ProviderPayloadRequest struct {
	ExternalID string `param:"externalId" validate:"required,max=255"`
}

// GetProviderPayload renders the geofence as it would be sent to the provider
func (h *GeofenceHandler) GetProviderPayload(c echo.Context) error {
	var req ProviderPayloadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid external id")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid external id", err)
	}

	payload, err := h.geofenceUC.GetProviderPayload(c.Request().Context(), req.ExternalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload)
}
