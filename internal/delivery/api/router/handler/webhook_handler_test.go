package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/errors"
	mockUC "proximity/internal/mocks/usecase"
	"proximity/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookBody = `{"event": {"_id": "evt_1", "type": "user.entered_geofence"}}`

func serveWebhook(t *testing.T, ingestUC usecase.IngestUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	h := NewWebhookHandler(WebhookHandlerParams{IngestUC: ingestUC, Logger: discardLogger})
	e.POST("/webhooks/geofence", h.ReceiveGeofenceEvent)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/geofence", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestWebhookHandler_Accepted(t *testing.T) {
	ingestUC := mockUC.NewMockIngestUsecase(t)
	ingestUC.EXPECT().IngestWebhook(mock.Anything, []byte(webhookBody)).Return(&usecase.IngestResult{
		Event: &entity.GeofenceEvent{ID: "evt_1", Kind: "user.entered_geofence"},
	}, nil).Once()

	rec := serveWebhook(t, ingestUC, webhookBody)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.Equal(t, WebhookResponse{Status: "accepted", EventID: "evt_1", EventType: "entry"}, resp)
}

func TestWebhookHandler_Duplicate(t *testing.T) {
	ingestUC := mockUC.NewMockIngestUsecase(t)
	ingestUC.EXPECT().IngestWebhook(mock.Anything, mock.Anything).Return(&usecase.IngestResult{
		Event:     &entity.GeofenceEvent{ID: "evt_1", Kind: "user.entered_geofence"},
		Duplicate: true,
	}, nil).Once()

	rec := serveWebhook(t, ingestUC, webhookBody)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.Equal(t, "duplicate", resp.Status)
}

func TestWebhookHandler_InvalidPayload(t *testing.T) {
	ingestUC := mockUC.NewMockIngestUsecase(t)
	ingestUC.EXPECT().IngestWebhook(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidPayload.WithDetails("webhook payload is not a JSON object")).Once()

	rec := serveWebhook(t, ingestUC, "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_PAYLOAD", env.Error.Code)
	assert.Equal(t, "webhook payload is not a JSON object", env.Error.Details)
}

func TestWebhookHandler_PublishFailed(t *testing.T) {
	ingestUC := mockUC.NewMockIngestUsecase(t)
	ingestUC.EXPECT().IngestWebhook(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(errors.Join(domainerrors.ErrEventPublishFailed, errors.New("topic gone")), "publish geofence event")).Once()

	rec := serveWebhook(t, ingestUC, webhookBody)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EVENT_PUBLISH_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}
