package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Observe(t *testing.T) {
	m := New()

	m.ObserveWebhook(service.WebhookAccepted)
	m.ObserveWebhook(service.WebhookAccepted)
	m.ObserveWebhook(service.WebhookDuplicate)
	m.ObserveDecision(entity.ThrottleStatusSent, entity.ReasonNone, 20*time.Millisecond)
	m.ObserveDecision(entity.ThrottleStatusThrottled, entity.ReasonMinInterval, 5*time.Millisecond)
	m.ObserveDispatch(2, 1, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.webhooks.WithLabelValues(service.WebhookAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhooks.WithLabelValues(service.WebhookDuplicate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("sent", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("throttled", "min_interval")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatchTokens.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatchTokens.WithLabelValues("invalid")))
}

func TestPrometheus_Handler(t *testing.T) {
	m := New()
	m.ObserveDecision(entity.ThrottleStatusSkipped, entity.ReasonNoMatch, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `proximity_decisions_total{reason="no_match",status="skipped"} 1`)
}

func TestPrometheus_Database(t *testing.T) {
	m := New()

	m.ObserveSlowQuery()
	m.ObserveSlowQuery()
	m.ObservePoolWait(3, 1500*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.slowQueries))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.poolWaits))
	assert.InDelta(t, 1.5, testutil.ToFloat64(m.poolWaitSeconds), 1e-9)
}
