package handler

import (
	"log/slog"
	"time"

	"proximity/internal/delivery/api/response"
	"proximity/internal/domain/entity"
	"proximity/internal/errors"
	"proximity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// LedgerHandler serves read access to the notification ledger
type LedgerHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// UserHistoryRequest binds GET /api/v1/ledger/users/:userId
type UserHistoryRequest struct {
	UserID int64 `param:"userId" validate:"gt=0"`
	Limit  int   `query:"limit" validate:"gte=0,lte=500"`
}

// EventDecisionsRequest binds GET /api/v1/ledger/events/:eventId
type EventDecisionsRequest struct {
	EventID string `param:"eventId" validate:"required,max=255"`
}

// LedgerEntryResponse is one ledger row as exposed over HTTP
type LedgerEntryResponse struct {
	ID         string         `json:"id"`
	UserID     int64          `json:"user_id"`
	GeofenceID *int64         `json:"geofence_id,omitempty"`
	BrandID    *int64         `json:"brand_id,omitempty"`
	BranchID   *int64         `json:"branch_id,omitempty"`
	OfferID    *int64         `json:"offer_id,omitempty"`
	EventType  string         `json:"event_type"`
	EventID    string         `json:"event_id"`
	Status     string         `json:"status"`
	Reason     string         `json:"reason,omitempty"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Payload    map[string]any `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// GetUserHistory lists a user's newest decisions
func (h *LedgerHandler) GetUserHistory(c echo.Context) error {
	var req UserHistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id or limit")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid query", err)
	}

	logs, err := h.ledgerUC.GetUserHistory(c.Request().Context(), req.UserID, req.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toLedgerEntries(logs))
}

// GetEventDecisions lists the decisions recorded for one provider event
func (h *LedgerHandler) GetEventDecisions(c echo.Context) error {
	var req EventDecisionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event id")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid query", err)
	}

	logs, err := h.ledgerUC.GetEventDecisions(c.Request().Context(), req.EventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toLedgerEntries(logs))
}

func toLedgerEntries(logs []*entity.NotificationThrottleLog) []LedgerEntryResponse {
	return lo.Map(logs, func(log *entity.NotificationThrottleLog, _ int) LedgerEntryResponse {
		return LedgerEntryResponse{
			ID:         log.ID.String(),
			UserID:     log.UserID,
			GeofenceID: log.GeofenceID,
			BrandID:    log.BrandID,
			BranchID:   log.BranchID,
			OfferID:    log.OfferID,
			EventType:  log.EventType.String(),
			EventID:    log.EventID,
			Status:     log.Status.String(),
			Reason:     log.Reason.String(),
			Latitude:   log.Latitude,
			Longitude:  log.Longitude,
			Payload:    log.Payload,
			CreatedAt:  log.CreatedAt,
		}
	})
}
