package impl

import (
	"context"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/domain/repository"
	"proximity/internal/domain/service"
	"proximity/internal/errors"
	"proximity/internal/usecase"
)

// throttleRequest is the candidate notification a check is evaluated against
type throttleRequest struct {
	userID   int64
	brandID  *int64
	branchID *int64
	offerID  *int64
	now      time.Time
}

// throttleCheck reports true when the request must be blocked with reason
type throttleCheck struct {
	reason  entity.ThrottleReason
	blocked func(ctx context.Context, req *throttleRequest) (bool, error)
}

type throttleService struct {
	cfg     *config.ThrottleConfig
	logRepo repository.ThrottleLogRepository
	clock   service.Clock
	checks  []throttleCheck
}

// NewThrottleService creates the throttle evaluator. The checks run in a fixed order
// and the first one that blocks decides the reason.
func NewThrottleService(
	cfg *config.ThrottleConfig,
	logRepo repository.ThrottleLogRepository,
	clock service.Clock,
) usecase.ThrottleUsecase {
	s := &throttleService{
		cfg:     cfg,
		logRepo: logRepo,
		clock:   clock,
	}

	s.checks = []throttleCheck{
		{reason: entity.ReasonQuietHours, blocked: s.inQuietHours},
		{reason: entity.ReasonDailyLimit, blocked: s.overDailyLimit},
		{reason: entity.ReasonWeeklyLimit, blocked: s.overWeeklyLimit},
		{reason: entity.ReasonMinInterval, blocked: s.withinMinInterval},
		{reason: entity.ReasonBrandCooldown, blocked: s.inBrandCooldown},
		{reason: entity.ReasonLocationCooldown, blocked: s.inLocationCooldown},
		{reason: entity.ReasonOfferCooldown, blocked: s.inOfferCooldown},
	}

	return s
}

// CanSend evaluates every check in order and short-circuits on the first block
func (s *throttleService) CanSend(ctx context.Context, userID int64, brandID, branchID, offerID *int64) (entity.ThrottleReason, error) {
	req := &throttleRequest{
		userID:   userID,
		brandID:  brandID,
		branchID: branchID,
		offerID:  offerID,
		now:      s.clock.Now(),
	}

	for _, check := range s.checks {
		blocked, err := check.blocked(ctx, req)
		if err != nil {
			return entity.ReasonNone, errors.Wrapf(err, "throttle check %s", check.reason)
		}
		if blocked {
			return check.reason, nil
		}
	}

	return entity.ReasonNone, nil
}

func (s *throttleService) inQuietHours(_ context.Context, req *throttleRequest) (bool, error) {
	return s.cfg.IsQuietHours(req.now), nil
}

func (s *throttleService) overDailyLimit(ctx context.Context, req *throttleRequest) (bool, error) {
	return s.overLimit(ctx, req.userID, s.cfg.MaxPerDay, s.cfg.StartOfDay(req.now))
}

func (s *throttleService) overWeeklyLimit(ctx context.Context, req *throttleRequest) (bool, error) {
	return s.overLimit(ctx, req.userID, s.cfg.MaxPerWeek, s.cfg.StartOfWeek(req.now))
}

func (s *throttleService) overLimit(ctx context.Context, userID int64, limit int, since time.Time) (bool, error) {
	if limit <= 0 {
		return false, nil
	}

	count, err := s.logRepo.CountSentSince(ctx, userID, since)
	if err != nil {
		return false, err
	}

	return count >= int64(limit), nil
}

func (s *throttleService) withinMinInterval(ctx context.Context, req *throttleRequest) (bool, error) {
	interval := s.cfg.MinInterval()
	if interval <= 0 {
		return false, nil
	}

	latest, err := s.logRepo.LatestSentAt(ctx, req.userID)
	if err != nil {
		return false, err
	}
	if latest == nil {
		return false, nil
	}

	return req.now.Sub(*latest) < interval, nil
}

func (s *throttleService) inBrandCooldown(ctx context.Context, req *throttleRequest) (bool, error) {
	if req.brandID == nil {
		return false, nil
	}

	return s.inCooldown(ctx, req, entity.ThrottleLogScope{BrandID: req.brandID}, s.cfg.BrandCooldown())
}

func (s *throttleService) inLocationCooldown(ctx context.Context, req *throttleRequest) (bool, error) {
	if req.branchID == nil {
		return false, nil
	}

	return s.inCooldown(ctx, req, entity.ThrottleLogScope{BranchID: req.branchID}, s.cfg.LocationCooldown())
}

func (s *throttleService) inOfferCooldown(ctx context.Context, req *throttleRequest) (bool, error) {
	if req.offerID == nil {
		return false, nil
	}

	return s.inCooldown(ctx, req, entity.ThrottleLogScope{OfferID: req.offerID}, s.cfg.OfferCooldown())
}

func (s *throttleService) inCooldown(ctx context.Context, req *throttleRequest, scope entity.ThrottleLogScope, window time.Duration) (bool, error) {
	if window <= 0 {
		return false, nil
	}

	return s.logRepo.HasSentSince(ctx, req.userID, scope, req.now.Add(-window))
}
