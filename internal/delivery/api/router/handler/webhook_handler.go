package handler

import (
	"io"
	"log/slog"
	"net/http"

	"proximity/internal/delivery/api/response"
	"proximity/internal/errors"
	"proximity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	IngestUC usecase.IngestUsecase
	Logger   *slog.Logger
}

// WebhookHandler receives geofence events from the location provider
type WebhookHandler struct {
	ingestUC usecase.IngestUsecase
	logger   *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		ingestUC: params.IngestUC,
		logger:   params.Logger,
	}
}

// WebhookResponse is returned for accepted and duplicate events
type WebhookResponse struct {
	Status    string `json:"status"`
	EventID   string `json:"event_id,omitempty"`
	EventType string `json:"event_type"`
}

// ReceiveGeofenceEvent handles POST /webhooks/geofence.
// Accepted events answer 202, replays of a seen event id answer 200.
func (h *WebhookHandler) ReceiveGeofenceEvent(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unable to read request body")
	}

	result, err := h.ingestUC.IngestWebhook(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := WebhookResponse{
		Status:    "accepted",
		EventID:   result.Event.ID,
		EventType: result.Event.EventType().String(),
	}
	if result.Duplicate {
		resp.Status = "duplicate"

		return response.Success(c, http.StatusOK, resp)
	}

	return response.Success(c, http.StatusAccepted, resp)
}
