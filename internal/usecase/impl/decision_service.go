// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"
	"proximity/internal/domain/constants"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/domain/service"
	"proximity/internal/errors"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

// ErrChannelNotConfigured is recorded as the dispatch error when no push channel is wired
var ErrChannelNotConfigured = errors.New("notification channel not configured")

// ErrAllTokensRejected is recorded when the channel accepted the call but delivered to no device
var ErrAllTokensRejected = errors.New("notification rejected for every device")

// decisionContext is what the orchestrator knows about an event once identifiers are resolved
type decisionContext struct {
	event      *entity.GeofenceEvent
	userID     *int64
	brandID    *int64
	branchID   *int64
	geofenceID *int64
	offer      *entity.Offer
}

// decisionService implements the DecisionUsecase interface
type decisionService struct {
	logger          *slog.Logger
	notifyOn        []entity.EventType
	dispatchTimeout time.Duration
	deepLink        string
	relevance       usecase.RelevanceUsecase
	throttle        usecase.ThrottleUsecase
	txManager       repository.TransactionManager
	logRepo         repository.ThrottleLogRepository
	geofenceRepo    repository.GeofenceRepository
	catalogRepo     repository.CatalogRepository
	deviceRepo      repository.DeviceRepository
	notifier        service.NotificationService
	locker          service.UserLocker
	metrics         service.Metrics
	clock           service.Clock
}

// DecisionServiceParams holds dependencies for DecisionService, injected by Fx.
type DecisionServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Matching     *config.MatchingConfig
	Dispatch     *config.DispatchConfig
	Relevance    usecase.RelevanceUsecase
	Throttle     usecase.ThrottleUsecase
	TxManager    repository.TransactionManager
	LogRepo      repository.ThrottleLogRepository
	GeofenceRepo repository.GeofenceRepository
	CatalogRepo  repository.CatalogRepository
	DeviceRepo   repository.DeviceRepository
	Notifier     service.NotificationService `optional:"true"`
	Locker       service.UserLocker          `optional:"true"`
	Metrics      service.Metrics
	Clock        service.Clock
}

// NewDecisionService is the constructor for the decision orchestrator
func NewDecisionService(params DecisionServiceParams) usecase.DecisionUsecase {
	notifyOn := []entity.EventType{entity.EventTypeEntry, entity.EventTypeDwell, entity.EventTypeExit}
	if params.Matching != nil && len(params.Matching.NotifyOn) > 0 {
		notifyOn = lo.Map(params.Matching.NotifyOn, func(kind string, _ int) entity.EventType {
			return entity.EventType(kind)
		})
	}

	var (
		timeout  time.Duration
		deepLink string
	)
	if params.Dispatch != nil {
		timeout = params.Dispatch.Timeout
		deepLink = params.Dispatch.DeepLinkTemplate
	}

	return &decisionService{
		logger:          params.Logger,
		notifyOn:        notifyOn,
		dispatchTimeout: timeout,
		deepLink:        deepLink,
		relevance:       params.Relevance,
		throttle:        params.Throttle,
		txManager:       params.TxManager,
		logRepo:         params.LogRepo,
		geofenceRepo:    params.GeofenceRepo,
		catalogRepo:     params.CatalogRepo,
		deviceRepo:      params.DeviceRepo,
		notifier:        params.Notifier,
		locker:          params.Locker,
		metrics:         params.Metrics,
		clock:           params.Clock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *decisionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ProcessEvent runs the pipeline: resolve, match, throttle, dispatch, record
func (s *decisionService) ProcessEvent(ctx context.Context, event *entity.GeofenceEvent) (*entity.Decision, error) {
	started := s.clock.Now()

	dc, err := s.resolveContext(ctx, event)
	if err != nil {
		return nil, err
	}

	if dc.userID == nil || dc.brandID == nil {
		return s.finish(ctx, dc, started, entity.ThrottleStatusSkipped, entity.ReasonUnresolvedContext, nil)
	}

	if !slices.Contains(s.notifyOn, event.EventType()) {
		return s.finish(ctx, dc, started, entity.ThrottleStatusSkipped, entity.ReasonIgnoredEventType, nil)
	}

	if s.locker != nil {
		unlock, lockErr := s.locker.Lock(ctx, *dc.userID)
		if lockErr != nil {
			return nil, errors.Wrap(errors.Join(domainerrors.ErrLockUnavailable, lockErr), "lock user")
		}
		defer unlock()
	}

	return s.decide(ctx, dc, started)
}

// decide covers the ledger read, the dispatch and the ledger append for one user
func (s *decisionService) decide(ctx context.Context, dc *decisionContext, started time.Time) (*entity.Decision, error) {
	offer, err := s.relevance.BestOffer(ctx, *dc.userID, *dc.brandID)
	if err != nil {
		return nil, errors.Wrap(errors.Join(domainerrors.ErrCatalogUnavailable, err), "select offer")
	}
	if offer == nil {
		return s.finish(ctx, dc, started, entity.ThrottleStatusSkipped, entity.ReasonNoMatch, nil)
	}
	dc.offer = offer

	reason, err := s.throttle.CanSend(ctx, *dc.userID, dc.brandID, dc.branchID, &offer.ID)
	if err != nil {
		return nil, errors.Wrap(errors.Join(domainerrors.ErrLedgerReadFailed, err), "evaluate throttle")
	}
	if reason != entity.ReasonNone {
		return s.finish(ctx, dc, started, entity.ThrottleStatusThrottled, reason, nil)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, *dc.userID)
	if err != nil {
		return nil, errors.Wrap(err, "load devices")
	}
	if len(devices) == 0 {
		return s.finish(ctx, dc, started, entity.ThrottleStatusSkipped, entity.ReasonNoDevice, nil)
	}

	payload, dispatchErr := s.dispatch(ctx, dc, devices)
	if dispatchErr != nil {
		s.log(ctx).Warn("[Decision] Dispatch failed",
			slog.String("event_id", dc.event.ID),
			slog.Int64("user_id", *dc.userID),
			slog.Any("error", dispatchErr),
		)

		return s.finish(ctx, dc, started, entity.ThrottleStatusFailed, entity.ReasonDispatchFailed, payload)
	}

	return s.finish(ctx, dc, started, entity.ThrottleStatusSent, entity.ReasonNone, payload)
}

// resolveContext fills user, brand, branch and geofence ids from the event, then the catalog, then the geofence record
func (s *decisionService) resolveContext(ctx context.Context, event *entity.GeofenceEvent) (*decisionContext, error) {
	dc := &decisionContext{
		event:      event,
		userID:     event.UserID,
		brandID:    event.BrandID(),
		branchID:   event.BranchID(),
		geofenceID: event.GeofenceID,
	}

	if dc.brandID == nil && dc.branchID == nil {
		geofence, err := s.lookupGeofence(ctx, event)
		if err != nil {
			return nil, err
		}
		if geofence != nil {
			dc.geofenceID = &geofence.ID
			dc.branchID = geofence.BranchID
			dc.brandID = geofence.BrandID
		}
	}

	if dc.brandID == nil && dc.branchID != nil {
		brandID, err := s.catalogRepo.FindBrandIDByBranch(ctx, *dc.branchID)
		if err != nil {
			return nil, errors.Wrap(errors.Join(domainerrors.ErrCatalogUnavailable, err), "resolve brand from branch")
		}
		dc.brandID = brandID
	}

	return dc, nil
}

func (s *decisionService) lookupGeofence(ctx context.Context, event *entity.GeofenceEvent) (*entity.Geofence, error) {
	var (
		geofence *entity.Geofence
		err      error
	)

	switch {
	case event.GeofenceID != nil:
		geofence, err = s.geofenceRepo.FindGeofenceByID(ctx, *event.GeofenceID)
	case event.ProviderGeofenceID != "":
		geofence, err = s.geofenceRepo.FindGeofenceByRadarID(ctx, event.ProviderGeofenceID)
	default:
		return nil, nil
	}

	if errors.Is(err, repository.ErrGeofenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "lookup geofence")
	}

	return geofence, nil
}

// dispatch hands the notification to the channel with a bounded timeout.
// The returned payload is the ledger snapshot in both outcomes.
func (s *decisionService) dispatch(ctx context.Context, dc *decisionContext, devices []*entity.UserDevice) (map[string]any, error) {
	title, body, data := s.buildNotification(dc)
	tokens := lo.Map(devices, func(device *entity.UserDevice, _ int) string {
		return device.FCMToken
	})

	payload := map[string]any{
		"title":        title,
		"body":         body,
		"data":         data,
		"device_count": len(tokens),
	}

	if s.notifier == nil {
		payload["error"] = ErrChannelNotConfigured.Error()

		return payload, ErrChannelNotConfigured
	}

	dispatchCtx := ctx
	if s.dispatchTimeout > 0 {
		var cancel context.CancelFunc
		dispatchCtx, cancel = context.WithTimeout(ctx, s.dispatchTimeout)
		defer cancel()
	}

	successCount, failureCount, invalidTokens, err := s.notifier.SendBatchNotification(dispatchCtx, tokens, title, body, data)
	if s.metrics != nil {
		s.metrics.ObserveDispatch(successCount, failureCount, len(invalidTokens))
	}
	if err != nil {
		payload["error"] = err.Error()

		return payload, err
	}

	payload["success_count"] = successCount
	payload["failure_count"] = failureCount

	if len(invalidTokens) > 0 {
		s.deactivateInvalidDevices(ctx, devices, invalidTokens)
	}

	if successCount == 0 {
		payload["error"] = ErrAllTokensRejected.Error()

		return payload, ErrAllTokensRejected
	}

	return payload, nil
}

func (s *decisionService) buildNotification(dc *decisionContext) (title, body string, data map[string]string) {
	offerID := strconv.FormatInt(dc.offer.ID, 10)

	data = map[string]string{
		"type":       constants.NotificationTypeGeofenceOffer,
		"event_id":   dc.event.ID,
		"event_type": dc.event.EventType().String(),
		"offer_id":   offerID,
		"brand_id":   strconv.FormatInt(*dc.brandID, 10),
	}
	if dc.branchID != nil {
		data["branch_id"] = strconv.FormatInt(*dc.branchID, 10)
	}
	if s.deepLink != "" {
		data["deep_link"] = strings.ReplaceAll(s.deepLink, "{offer_id}", offerID)
	}

	return dc.offer.Title, dc.offer.Description, data
}

// deactivateInvalidDevices switches off devices whose tokens the channel rejected as unregistered
func (s *decisionService) deactivateInvalidDevices(ctx context.Context, devices []*entity.UserDevice, invalidTokens []string) {
	stale := lo.Filter(devices, func(device *entity.UserDevice, _ int) bool {
		return slices.Contains(invalidTokens, device.FCMToken)
	})
	if len(stale) == 0 {
		return
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		deviceRepo := txRepoFactory.NewDeviceRepository()
		for _, device := range stale {
			if err := deviceRepo.DeactivateDevice(ctx, device.ID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrapf(err, "deactivate device %s", device.ID)
			}
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("[Decision] Failed to deactivate invalid devices",
			slog.Int("device_count", len(stale)),
			slog.Any("error", err),
		)
	}
}

// finish appends the single ledger row for the decision. A failed append turns the decision into failed.
func (s *decisionService) finish(
	ctx context.Context,
	dc *decisionContext,
	started time.Time,
	status entity.ThrottleStatus,
	reason entity.ThrottleReason,
	payload map[string]any,
) (*entity.Decision, error) {
	logRow := &entity.NotificationThrottleLog{
		ID:               newLedgerID(),
		UserID:           lo.FromPtr(dc.userID),
		GeofenceID:       dc.geofenceID,
		BrandID:          dc.brandID,
		BranchID:         dc.branchID,
		NotificationType: constants.NotificationTypeGeofenceOffer,
		EventType:        dc.event.EventType(),
		EventID:          dc.event.ID,
		Latitude:         dc.event.Latitude,
		Longitude:        dc.event.Longitude,
		Status:           status,
		Reason:           reason,
		Payload:          payload,
		CreatedAt:        s.clock.Now(),
	}
	if dc.offer != nil {
		logRow.OfferID = &dc.offer.ID
	}

	decision := &entity.Decision{
		Status: status,
		Reason: reason,
		Offer:  dc.offer,
		Log:    logRow,
	}

	if err := s.logRepo.CreateLog(ctx, logRow); err != nil {
		decision.Status = entity.ThrottleStatusFailed
		s.observe(decision, started)

		return decision, errors.Wrap(errors.Join(domainerrors.ErrLedgerWriteFailed, err), "append ledger row")
	}

	s.observe(decision, started)

	s.log(ctx).Info("[Decision] Event processed",
		slog.String("event_id", dc.event.ID),
		slog.Int64("user_id", logRow.UserID),
		slog.String("status", status.String()),
		slog.String("reason", reason.String()),
	)

	return decision, nil
}

func (s *decisionService) observe(decision *entity.Decision, started time.Time) {
	if s.metrics == nil {
		return
	}

	s.metrics.ObserveDecision(decision.Status, decision.Reason, s.clock.Now().Sub(started))
}

func newLedgerID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
