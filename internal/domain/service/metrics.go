package service

import (
	"time"

	"proximity/internal/domain/entity"
)

// Webhook outcomes reported by the ingest path
const (
	WebhookAccepted  = "accepted"
	WebhookDuplicate = "duplicate"
	WebhookRejected  = "rejected"
	WebhookFailed    = "failed"
)

// Metrics receives pipeline outcomes for monitoring
type Metrics interface {
	// ObserveWebhook counts an inbound webhook by outcome
	ObserveWebhook(outcome string)

	// ObserveDecision records one terminal decision and how long the pipeline took
	ObserveDecision(status entity.ThrottleStatus, reason entity.ThrottleReason, elapsed time.Duration)

	// ObserveDispatch records the per-token results of one channel call
	ObserveDispatch(success, failure, invalid int)
}
