package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"
	"proximity/internal/domain/constants"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	mockUC "proximity/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockDecisionUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop
	decisionUC := mockUC.NewMockDecisionUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DecisionUC: decisionUC,
	})
	require.False(t, h.verifyPushAuth)

	return h, decisionUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/geofence-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeData(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/pubsub/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_ProcessesEvent(t *testing.T) {
	h, decisionUC := newTestPushHandler(t)

	decisionUC.EXPECT().ProcessEvent(mock.Anything, mock.MatchedBy(func(event *entity.GeofenceEvent) bool {
		return event.ID == "evt_1" && event.UserID != nil && *event.UserID == 7 && event.ExternalID == "branch_42"
	})).
		Run(func(ctx context.Context, _ *entity.GeofenceEvent) {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
		}).
		Return(&entity.Decision{Status: entity.ThrottleStatusSent}, nil).Once()

	data := encodeData(`{"request_id": "req-body", "event": {"id": "evt_1", "kind": "user.entered_geofence", "user_id": 7, "external_id": "branch_42"}}`)
	rec := servePush(h, pushBody(t, data, map[string]string{"request_id": "req-1"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFromBody(t *testing.T) {
	h, decisionUC := newTestPushHandler(t)

	decisionUC.EXPECT().ProcessEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.GeofenceEvent) {
			assert.Equal(t, "req-body", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&entity.Decision{Status: entity.ThrottleStatusSkipped}, nil).Once()

	data := encodeData(`{"request_id": "req-body", "event": {"id": "evt_1"}}`)
	rec := servePush(h, pushBody(t, data, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
	}{
		{name: "not json", body: func(*testing.T) string { return "{" }},
		{name: "bad base64", body: func(t *testing.T) string { return pushBody(t, "%%%", nil) }},
		{name: "bad event json", body: func(t *testing.T) string { return pushBody(t, encodeData("nope"), nil) }},
		{name: "no event", body: func(t *testing.T) string { return pushBody(t, encodeData(`{"request_id": "r"}`), nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body(t))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_ProcessingErrorAsksForRedelivery(t *testing.T) {
	h, decisionUC := newTestPushHandler(t)

	decisionUC.EXPECT().ProcessEvent(mock.Anything, mock.Anything).
		Return(&entity.Decision{Status: entity.ThrottleStatusFailed}, errors.Join(domainerrors.ErrLedgerWriteFailed, errors.New("disk full"))).Once()

	rec := servePush(h, pushBody(t, encodeData(`{"event": {"id": "evt_1"}}`), nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
