package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"proximity/internal/domain/entity"
	mockUC "proximity/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLedgerEcho(ledgerUC *mockUC.MockLedgerUsecase) *echo.Echo {
	e := newTestEcho()
	h := NewLedgerHandler(LedgerHandlerParams{LedgerUC: ledgerUC, Logger: discardLogger})
	e.GET("/api/v1/ledger/users/:userId", h.GetUserHistory)
	e.GET("/api/v1/ledger/events/:eventId", h.GetEventDecisions)

	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestLedgerHandler_GetUserHistory(t *testing.T) {
	ledgerUC := mockUC.NewMockLedgerUsecase(t)
	rowID := uuid.New()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	offerID := int64(100)

	ledgerUC.EXPECT().GetUserHistory(mock.Anything, int64(7), 20).Return([]*entity.NotificationThrottleLog{{
		ID:        rowID,
		UserID:    7,
		OfferID:   &offerID,
		EventType: entity.EventTypeEntry,
		EventID:   "evt_1",
		Status:    entity.ThrottleStatusThrottled,
		Reason:    entity.ReasonMinInterval,
		CreatedAt: createdAt,
	}}, nil).Once()

	rec := get(newLedgerEcho(ledgerUC), "/api/v1/ledger/users/7?limit=20")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []LedgerEntryResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, rowID.String(), entries[0].ID)
	assert.Equal(t, "throttled", entries[0].Status)
	assert.Equal(t, "min_interval", entries[0].Reason)
	assert.Equal(t, "entry", entries[0].EventType)
	assert.Equal(t, &offerID, entries[0].OfferID)
	assert.True(t, createdAt.Equal(entries[0].CreatedAt))
}

func TestLedgerHandler_GetUserHistoryDefaultLimit(t *testing.T) {
	ledgerUC := mockUC.NewMockLedgerUsecase(t)
	ledgerUC.EXPECT().GetUserHistory(mock.Anything, int64(7), 0).Return(nil, nil).Once()

	rec := get(newLedgerEcho(ledgerUC), "/api/v1/ledger/users/7")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 0, *env.Meta.Count)
}

func TestLedgerHandler_GetUserHistoryRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   string
	}{
		{name: "non numeric user", target: "/api/v1/ledger/users/abc", code: "INVALID_INPUT"},
		{name: "zero user", target: "/api/v1/ledger/users/0", code: "VALIDATION_FAILED"},
		{name: "limit too large", target: "/api/v1/ledger/users/7?limit=1000", code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgerUC := mockUC.NewMockLedgerUsecase(t)

			rec := get(newLedgerEcho(ledgerUC), tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestLedgerHandler_GetEventDecisions(t *testing.T) {
	ledgerUC := mockUC.NewMockLedgerUsecase(t)
	ledgerUC.EXPECT().GetEventDecisions(mock.Anything, "evt_1").Return([]*entity.NotificationThrottleLog{
		{ID: uuid.New(), UserID: 7, EventID: "evt_1", Status: entity.ThrottleStatusSent},
	}, nil).Once()

	rec := get(newLedgerEcho(ledgerUC), "/api/v1/ledger/events/evt_1")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var entries []LedgerEntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 1)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 1, *env.Meta.Count)
	assert.Equal(t, "sent", entries[0].Status)
	assert.Empty(t, entries[0].Reason)
}
