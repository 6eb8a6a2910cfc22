package impl

import (
	"context"
	"log/slog"
	"time"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/service"
	"proximity/internal/errors"
	"proximity/internal/usecase"

	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const (
	defaultPublishAttempts = 3
	publishBackoffBase     = 100 * time.Millisecond
	publishBackoffCap      = 2 * time.Second
)

// ingestService implements the IngestUsecase interface
type ingestService struct {
	logger       *slog.Logger
	normalizer   usecase.EventNormalizer
	deduplicator service.EventDeduplicator
	publisher    service.EventPublisher
	metrics      service.Metrics
	maxAttempts  uint64
}

// IngestServiceParams holds dependencies for IngestService, injected by Fx.
type IngestServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	Normalizer   usecase.EventNormalizer
	Deduplicator service.EventDeduplicator
	Publisher    service.EventPublisher
	Metrics      service.Metrics
}

// NewIngestService is the constructor for the webhook ingest path
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	maxAttempts := uint64(defaultPublishAttempts)
	if params.Config != nil && params.Config.PubSub != nil && params.Config.PubSub.MaxAttempts > 0 {
		maxAttempts = params.Config.PubSub.MaxAttempts
	}

	return &ingestService{
		logger:       params.Logger,
		normalizer:   params.Normalizer,
		deduplicator: params.Deduplicator,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		maxAttempts:  maxAttempts,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *ingestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// IngestWebhook normalizes, deduplicates and publishes one provider webhook
func (s *ingestService) IngestWebhook(ctx context.Context, payload []byte) (*usecase.IngestResult, error) {
	event, err := s.normalizer.Normalize(payload)
	if err != nil {
		s.metrics.ObserveWebhook(service.WebhookRejected)

		return nil, domainerrors.ErrInvalidPayload.WithDetails(err.Error())
	}

	// Events without an id cannot be deduplicated and are always forwarded
	if event.ID != "" {
		claimed, claimErr := s.deduplicator.Claim(ctx, event.ID)
		if claimErr != nil {
			s.metrics.ObserveWebhook(service.WebhookFailed)

			return nil, errors.Wrap(errors.Join(domainerrors.ErrEventDedupFailed, claimErr), "claim event id")
		}
		if !claimed {
			s.metrics.ObserveWebhook(service.WebhookDuplicate)
			s.log(ctx).Info("[Ingest] Duplicate geofence event dropped", slog.String("event_id", event.ID))

			return &usecase.IngestResult{Event: event, Duplicate: true}, nil
		}
	}

	msg := &service.GeofenceEventMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Event:     event,
	}

	if err := s.publish(ctx, msg); err != nil {
		s.metrics.ObserveWebhook(service.WebhookFailed)

		if event.ID != "" {
			if releaseErr := s.deduplicator.Release(ctx, event.ID); releaseErr != nil {
				s.log(ctx).Warn("[Ingest] Failed to release event id",
					slog.String("event_id", event.ID),
					slog.Any("error", releaseErr),
				)
			}
		}

		return nil, errors.Wrap(errors.Join(domainerrors.ErrEventPublishFailed, err), "publish geofence event")
	}

	s.metrics.ObserveWebhook(service.WebhookAccepted)
	s.log(ctx).Info("[Ingest] Geofence event accepted",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.EventType().String()),
	)

	return &usecase.IngestResult{Event: event}, nil
}

// publish retries transient publisher failures with a capped Fibonacci backoff
func (s *ingestService) publish(ctx context.Context, msg *service.GeofenceEventMessage) error {
	backoff := retry.NewFibonacci(publishBackoffBase)
	backoff = retry.WithCappedDuration(publishBackoffCap, backoff)
	backoff = retry.WithMaxRetries(s.maxAttempts-1, backoff)

	attempt := 0

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := s.publisher.PublishGeofenceEvent(ctx, msg); err != nil {
			s.log(ctx).Warn("[Ingest] Publish attempt failed",
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return retry.RetryableError(err)
		}

		return nil
	})
}
