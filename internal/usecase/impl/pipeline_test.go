package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/infra/metrics"
	"proximity/internal/infra/persistence/model"
	"proximity/internal/infra/persistence/postgres"
	mockSvc "proximity/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stepClock is a clock the test moves forward by hand
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func openPipelineDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&model.BranchModel{ID: 42, BrandID: 9, Name: "Xinyi"}).Error)
	require.NoError(t, db.Create([]model.BrandCategoryModel{
		{BrandID: 9, CategoryID: 1},
		{BrandID: 9, CategoryID: 2},
	}).Error)
	require.NoError(t, db.Create([]model.UserInterestModel{
		{UserID: 7, CategoryID: 1},
		{UserID: 8, CategoryID: 5},
	}).Error)
	require.NoError(t, db.Create(&model.OfferModel{
		ID:            100,
		BrandID:       9,
		Title:         "Half price latte",
		Description:   "Only today",
		Status:        string(entity.OfferStatusActive),
		DiscountValue: 50,
	}).Error)

	deviceRepo := postgres.NewDeviceRepository(db)
	for _, device := range []*entity.UserDevice{
		{UserID: 7, FCMToken: "tok_7", Platform: "ios", IsActive: true},
		{UserID: 8, FCMToken: "tok_8", Platform: "android", IsActive: true},
	} {
		require.NoError(t, deviceRepo.CreateDevice(context.Background(), device))
	}
}

func pipelineEvent(id string, userID int64) *entity.GeofenceEvent {
	return &entity.GeofenceEvent{
		ID:         id,
		Kind:       "user.entered_geofence",
		UserID:     &userID,
		ExternalID: "branch_42",
		Latitude:   25.033,
		Longitude:  121.5654,
	}
}

// The ledger written by one decision is what the next decision reads back.
func TestDecisionPipeline_ClosedLoop(t *testing.T) {
	ctx := context.Background()
	db := openPipelineDB(t)
	seedCatalog(t, db)

	clk := &stepClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	throttleCfg := config.DefaultThrottleConfig()
	throttleCfg.QuietHours.Enabled = false
	matchingCfg := &config.MatchingConfig{RequireInterestMatch: true, NotifyOn: []string{"entry", "dwell", "exit"}}

	logRepo := postgres.NewThrottleLogRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	notifier := mockSvc.NewMockNotificationService(t)
	notifier.EXPECT().SendBatchNotification(mock.Anything, []string{"tok_7"}, "Half price latte", "Only today", mock.Anything).
		Return(1, 0, nil, nil).Once()

	svc := NewDecisionService(DecisionServiceParams{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Matching:     matchingCfg,
		Dispatch:     &config.DispatchConfig{Timeout: time.Second},
		Relevance:    NewRelevanceService(matchingCfg, catalogRepo, clk),
		Throttle:     NewThrottleService(throttleCfg, logRepo, clk),
		TxManager:    postgres.NewTransactionManager(db),
		LogRepo:      logRepo,
		GeofenceRepo: postgres.NewGeofenceRepository(db),
		CatalogRepo:  catalogRepo,
		DeviceRepo:   postgres.NewDeviceRepository(db),
		Notifier:     notifier,
		Metrics:      metrics.NewMetrics(metrics.New()),
		Clock:        clk,
	})

	first, err := svc.ProcessEvent(ctx, pipelineEvent("evt_1", 7))
	require.NoError(t, err)
	assert.Equal(t, entity.ThrottleStatusSent, first.Status)
	require.NotNil(t, first.Offer)
	assert.Equal(t, int64(100), first.Offer.ID)

	clk.Advance(2 * time.Minute)

	replay, err := svc.ProcessEvent(ctx, pipelineEvent("evt_2", 7))
	require.NoError(t, err)
	assert.Equal(t, entity.ThrottleStatusThrottled, replay.Status)
	assert.Equal(t, entity.ReasonMinInterval, replay.Reason)

	unmatched, err := svc.ProcessEvent(ctx, pipelineEvent("evt_3", 8))
	require.NoError(t, err)
	assert.Equal(t, entity.ThrottleStatusSkipped, unmatched.Status)
	assert.Equal(t, entity.ReasonNoMatch, unmatched.Reason)

	history, err := logRepo.FindLogsByUser(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "evt_2", history[0].EventID)
	assert.Equal(t, entity.ThrottleStatusThrottled, history[0].Status)
	assert.Equal(t, "evt_1", history[1].EventID)
	assert.Equal(t, entity.ThrottleStatusSent, history[1].Status)
	require.NotNil(t, history[1].BrandID)
	assert.Equal(t, int64(9), *history[1].BrandID)

	sent, err := logRepo.CountSentSince(ctx, 7, throttleCfg.StartOfDay(clk.Now()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), sent)

	forEvent, err := logRepo.FindLogsByEvent(ctx, "evt_3")
	require.NoError(t, err)
	require.Len(t, forEvent, 1)
	assert.Equal(t, int64(8), forEvent[0].UserID)
	assert.Equal(t, entity.ReasonNoMatch, forEvent[0].Reason)
}
