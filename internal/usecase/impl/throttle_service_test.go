package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/infra/clock"
	mockRepo "proximity/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 2026-03-10 is a Tuesday
var throttleNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func throttleTestConfig() *config.ThrottleConfig {
	return &config.ThrottleConfig{
		MaxPerDay:             5,
		MaxPerWeek:            10,
		MinIntervalMinutes:    30,
		BrandCooldownHours:    24,
		LocationCooldownHours: 12,
		OfferCooldownHours:    72,
		QuietHours: config.QuietHoursConfig{
			Enabled: true,
			Start:   "22:00",
			End:     "08:00",
		},
	}
}

func ptrInt64(v int64) *int64 {
	return &v
}

func scopeMatcher(expected entity.ThrottleLogScope) any {
	return mock.MatchedBy(func(scope entity.ThrottleLogScope) bool {
		return equalPtr(scope.BrandID, expected.BrandID) &&
			equalPtr(scope.BranchID, expected.BranchID) &&
			equalPtr(scope.OfferID, expected.OfferID)
	})
}

func equalPtr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func TestThrottleService_AllowsWhenNothingBlocks(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	logRepo.EXPECT().CountSentSince(ctx, int64(7), cfg.StartOfDay(throttleNow)).Return(1, nil).Once()
	logRepo.EXPECT().CountSentSince(ctx, int64(7), cfg.StartOfWeek(throttleNow)).Return(2, nil).Once()
	latest := throttleNow.Add(-time.Hour)
	logRepo.EXPECT().LatestSentAt(ctx, int64(7)).Return(&latest, nil).Once()
	logRepo.EXPECT().HasSentSince(ctx, int64(7), scopeMatcher(entity.ThrottleLogScope{BrandID: ptrInt64(9)}), throttleNow.Add(-24*time.Hour)).Return(false, nil).Once()
	logRepo.EXPECT().HasSentSince(ctx, int64(7), scopeMatcher(entity.ThrottleLogScope{BranchID: ptrInt64(42)}), throttleNow.Add(-12*time.Hour)).Return(false, nil).Once()
	logRepo.EXPECT().HasSentSince(ctx, int64(7), scopeMatcher(entity.ThrottleLogScope{OfferID: ptrInt64(100)}), throttleNow.Add(-72*time.Hour)).Return(false, nil).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, ptrInt64(9), ptrInt64(42), ptrInt64(100))
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonNone, reason)
}

func TestThrottleService_QuietHoursShortCircuits(t *testing.T) {
	logRepo := mockRepo.NewMockThrottleLogRepository(t)
	night := time.Date(2026, 3, 10, 23, 15, 0, 0, time.UTC)

	svc := NewThrottleService(throttleTestConfig(), logRepo, clock.Fixed(night))

	reason, err := svc.CanSend(context.Background(), 7, ptrInt64(9), ptrInt64(42), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonQuietHours, reason)
}

func TestThrottleService_QuietHoursInConfiguredTimezone(t *testing.T) {
	cfg := throttleTestConfig()
	cfg.QuietHours.Timezone = "Asia/Taipei"
	require.NoError(t, cfg.Validate())

	logRepo := mockRepo.NewMockThrottleLogRepository(t)
	// 15:00 UTC is 23:00 in Taipei
	svc := NewThrottleService(cfg, logRepo, clock.Fixed(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)))

	reason, err := svc.CanSend(context.Background(), 7, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonQuietHours, reason)
}

func TestThrottleService_DailyLimitReached(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	logRepo.EXPECT().CountSentSince(ctx, int64(7), cfg.StartOfDay(throttleNow)).Return(5, nil).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, ptrInt64(9), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonDailyLimit, reason)
}

func TestThrottleService_WeeklyLimitReached(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	weekStart := cfg.StartOfWeek(throttleNow)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), weekStart)

	logRepo.EXPECT().CountSentSince(ctx, int64(7), cfg.StartOfDay(throttleNow)).Return(0, nil).Once()
	logRepo.EXPECT().CountSentSince(ctx, int64(7), weekStart).Return(10, nil).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonWeeklyLimit, reason)
}

func TestThrottleService_MinInterval(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	logRepo.EXPECT().CountSentSince(ctx, int64(7), mock.Anything).Return(1, nil).Twice()
	latest := throttleNow.Add(-2 * time.Minute)
	logRepo.EXPECT().LatestSentAt(ctx, int64(7)).Return(&latest, nil).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, ptrInt64(9), ptrInt64(42), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonMinInterval, reason)
}

func TestThrottleService_DisabledBrandCooldownFallsThroughToLocation(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	cfg.BrandCooldownHours = 0
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	logRepo.EXPECT().CountSentSince(ctx, int64(7), mock.Anything).Return(0, nil).Twice()
	logRepo.EXPECT().LatestSentAt(ctx, int64(7)).Return(nil, nil).Once()
	logRepo.EXPECT().HasSentSince(ctx, int64(7), scopeMatcher(entity.ThrottleLogScope{BranchID: ptrInt64(42)}), throttleNow.Add(-12*time.Hour)).Return(true, nil).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, ptrInt64(9), ptrInt64(42), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonLocationCooldown, reason)
}

func TestThrottleService_BrandCooldown(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	cfg.MaxPerDay = 0
	cfg.MaxPerWeek = 0
	cfg.MinIntervalMinutes = 0
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	logRepo.EXPECT().HasSentSince(ctx, int64(7), scopeMatcher(entity.ThrottleLogScope{BrandID: ptrInt64(9)}), throttleNow.Add(-24*time.Hour)).Return(true, nil).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, ptrInt64(9), ptrInt64(42), ptrInt64(100))
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonBrandCooldown, reason)
}

func TestThrottleService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	cfg := throttleTestConfig()
	logRepo := mockRepo.NewMockThrottleLogRepository(t)

	dbErr := errors.New("connection reset")
	logRepo.EXPECT().CountSentSince(ctx, int64(7), mock.Anything).Return(0, dbErr).Once()

	svc := NewThrottleService(cfg, logRepo, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(ctx, 7, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "daily_limit")
	assert.Equal(t, entity.ReasonNone, reason)
}

// ledgerState answers throttle queries from fixed values and records which checks asked
type ledgerState struct {
	dayStart time.Time
	daily    int64
	weekly   int64
	latest   *time.Time
	brand    bool
	branch   bool
	offer    bool
	asked    []string
}

func (l *ledgerState) CreateLog(context.Context, *entity.NotificationThrottleLog) error {
	return nil
}

func (l *ledgerState) CountSentSince(_ context.Context, _ int64, since time.Time) (int64, error) {
	if since.Equal(l.dayStart) {
		l.asked = append(l.asked, "daily")

		return l.daily, nil
	}
	l.asked = append(l.asked, "weekly")

	return l.weekly, nil
}

func (l *ledgerState) LatestSentAt(context.Context, int64) (*time.Time, error) {
	l.asked = append(l.asked, "interval")

	return l.latest, nil
}

func (l *ledgerState) HasSentSince(_ context.Context, _ int64, scope entity.ThrottleLogScope, _ time.Time) (bool, error) {
	switch {
	case scope.BrandID != nil:
		l.asked = append(l.asked, "brand")

		return l.brand, nil
	case scope.BranchID != nil:
		l.asked = append(l.asked, "branch")

		return l.branch, nil
	default:
		l.asked = append(l.asked, "offer")

		return l.offer, nil
	}
}

func (l *ledgerState) FindLogsByUser(context.Context, int64, int) ([]*entity.NotificationThrottleLog, error) {
	return nil, nil
}

func (l *ledgerState) FindLogsByEvent(context.Context, string) ([]*entity.NotificationThrottleLog, error) {
	return nil, nil
}

func TestThrottleService_CheckOrder(t *testing.T) {
	recent := throttleNow.Add(-10 * time.Minute)
	night := time.Date(2026, 3, 10, 23, 15, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		state     ledgerState
		want      entity.ThrottleReason
		wantAsked []string
	}{
		{
			name:  "quiet hours before everything",
			now:   night,
			state: ledgerState{daily: 5, weekly: 10, latest: &recent, brand: true, branch: true, offer: true},
			want:  entity.ReasonQuietHours,
		},
		{
			name:      "daily limit before weekly",
			now:       throttleNow,
			state:     ledgerState{daily: 5, weekly: 10, latest: &recent, brand: true, branch: true, offer: true},
			want:      entity.ReasonDailyLimit,
			wantAsked: []string{"daily"},
		},
		{
			name:      "weekly limit before min interval",
			now:       throttleNow,
			state:     ledgerState{daily: 4, weekly: 10, latest: &recent, brand: true, branch: true, offer: true},
			want:      entity.ReasonWeeklyLimit,
			wantAsked: []string{"daily", "weekly"},
		},
		{
			name:      "min interval before cooldowns",
			now:       throttleNow,
			state:     ledgerState{latest: &recent, brand: true, branch: true, offer: true},
			want:      entity.ReasonMinInterval,
			wantAsked: []string{"daily", "weekly", "interval"},
		},
		{
			name:      "brand cooldown wins over location and offer",
			now:       throttleNow,
			state:     ledgerState{brand: true, branch: true, offer: true},
			want:      entity.ReasonBrandCooldown,
			wantAsked: []string{"daily", "weekly", "interval", "brand"},
		},
		{
			name:      "location cooldown before offer",
			now:       throttleNow,
			state:     ledgerState{branch: true, offer: true},
			want:      entity.ReasonLocationCooldown,
			wantAsked: []string{"daily", "weekly", "interval", "brand", "branch"},
		},
		{
			name:      "offer cooldown",
			now:       throttleNow,
			state:     ledgerState{offer: true},
			want:      entity.ReasonOfferCooldown,
			wantAsked: []string{"daily", "weekly", "interval", "brand", "branch", "offer"},
		},
		{
			name:      "allowed",
			now:       throttleNow,
			state:     ledgerState{daily: 4, weekly: 9},
			want:      entity.ReasonNone,
			wantAsked: []string{"daily", "weekly", "interval", "brand", "branch", "offer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := throttleTestConfig()
			state := tt.state
			state.dayStart = cfg.StartOfDay(tt.now)

			svc := NewThrottleService(cfg, &state, clock.Fixed(tt.now))

			reason, err := svc.CanSend(context.Background(), 7, ptrInt64(9), ptrInt64(42), ptrInt64(100))
			require.NoError(t, err)
			assert.Equal(t, tt.want, reason)
			assert.Equal(t, tt.wantAsked, state.asked)
		})
	}
}

func TestThrottleService_ZeroLimitsAreUnlimited(t *testing.T) {
	cfg := throttleTestConfig()
	cfg.QuietHours.Enabled = false
	cfg.MaxPerDay = 0
	cfg.MaxPerWeek = 0
	cfg.MinIntervalMinutes = 0
	cfg.BrandCooldownHours = 0
	cfg.LocationCooldownHours = 0
	cfg.OfferCooldownHours = 0

	recent := throttleNow.Add(-time.Minute)
	state := &ledgerState{daily: 100, weekly: 100, latest: &recent, brand: true, branch: true, offer: true}
	svc := NewThrottleService(cfg, state, clock.Fixed(throttleNow))

	reason, err := svc.CanSend(context.Background(), 7, ptrInt64(9), ptrInt64(42), ptrInt64(100))
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonNone, reason)
	assert.Empty(t, state.asked)
}
