package postgres

import (
	"context"
	"testing"
	"time"

	"proximity/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLog(userID int64, status entity.ThrottleStatus, at time.Time) *entity.NotificationThrottleLog {
	return &entity.NotificationThrottleLog{
		UserID:           userID,
		NotificationType: "geofence_offer",
		EventType:        entity.EventTypeEntry,
		EventID:          "evt_" + at.Format("150405"),
		Status:           status,
		CreatedAt:        at,
	}
}

func TestThrottleLogRepository_CreateLog(t *testing.T) {
	repo := NewThrottleLogRepository(setupTestDB(t))
	ctx := context.Background()

	log := newLog(7, entity.ThrottleStatusSent, baseTime)
	log.BrandID = ptr(int64(3))
	log.BranchID = ptr(int64(42))
	log.OfferID = ptr(int64(9))
	log.Latitude = 25.033
	log.Longitude = 121.565
	log.Payload = map[string]any{"title": "50% off"}

	require.NoError(t, repo.CreateLog(ctx, log))
	assert.NotEmpty(t, log.ID)

	logs, err := repo.FindLogsByEvent(ctx, log.EventID)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	got := logs[0]
	assert.Equal(t, log.ID, got.ID)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, int64(42), *got.BranchID)
	assert.Equal(t, int64(3), *got.BrandID)
	assert.Equal(t, int64(9), *got.OfferID)
	assert.Equal(t, entity.EventTypeEntry, got.EventType)
	assert.Equal(t, entity.ThrottleStatusSent, got.Status)
	assert.Equal(t, entity.ReasonNone, got.Reason)
	assert.Equal(t, "50% off", got.Payload["title"])
	assert.True(t, baseTime.Equal(got.CreatedAt))
	assert.Nil(t, got.GeofenceID)
}

func TestThrottleLogRepository_CountSentSince(t *testing.T) {
	repo := NewThrottleLogRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSent, baseTime.Add(-48*time.Hour))))
	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSent, baseTime.Add(-time.Hour))))
	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSent, baseTime)))
	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusThrottled, baseTime)))
	require.NoError(t, repo.CreateLog(ctx, newLog(2, entity.ThrottleStatusSent, baseTime)))

	count, err := repo.CountSentSince(ctx, 1, baseTime.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountSentSince(ctx, 1, baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "since is inclusive")

	count, err = repo.CountSentSince(ctx, 3, baseTime.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestThrottleLogRepository_LatestSentAt(t *testing.T) {
	repo := NewThrottleLogRepository(setupTestDB(t))
	ctx := context.Background()

	latest, err := repo.LatestSentAt(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSent, baseTime.Add(-2*time.Hour))))
	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSent, baseTime.Add(-time.Hour))))
	require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSkipped, baseTime)))

	latest, err = repo.LatestSentAt(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, baseTime.Add(-time.Hour).Equal(*latest))
}

func TestThrottleLogRepository_HasSentSince(t *testing.T) {
	repo := NewThrottleLogRepository(setupTestDB(t))
	ctx := context.Background()

	sent := newLog(1, entity.ThrottleStatusSent, baseTime.Add(-time.Hour))
	sent.BrandID = ptr(int64(3))
	sent.BranchID = ptr(int64(42))
	sent.OfferID = ptr(int64(9))
	require.NoError(t, repo.CreateLog(ctx, sent))

	failed := newLog(1, entity.ThrottleStatusFailed, baseTime)
	failed.BrandID = ptr(int64(4))
	require.NoError(t, repo.CreateLog(ctx, failed))

	tests := []struct {
		name  string
		scope entity.ThrottleLogScope
		since time.Time
		want  bool
	}{
		{name: "same brand in window", scope: entity.ThrottleLogScope{BrandID: ptr(int64(3))}, since: baseTime.Add(-2 * time.Hour), want: true},
		{name: "same brand outside window", scope: entity.ThrottleLogScope{BrandID: ptr(int64(3))}, since: baseTime.Add(-30 * time.Minute), want: false},
		{name: "other brand", scope: entity.ThrottleLogScope{BrandID: ptr(int64(5))}, since: baseTime.Add(-2 * time.Hour), want: false},
		{name: "failed rows do not count", scope: entity.ThrottleLogScope{BrandID: ptr(int64(4))}, since: baseTime.Add(-2 * time.Hour), want: false},
		{name: "same branch", scope: entity.ThrottleLogScope{BranchID: ptr(int64(42))}, since: baseTime.Add(-2 * time.Hour), want: true},
		{name: "same offer", scope: entity.ThrottleLogScope{OfferID: ptr(int64(9))}, since: baseTime.Add(-2 * time.Hour), want: true},
		{name: "other offer", scope: entity.ThrottleLogScope{OfferID: ptr(int64(10))}, since: baseTime.Add(-2 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasSentSince(ctx, 1, tt.scope, tt.since)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThrottleLogRepository_FindLogsByUser(t *testing.T) {
	repo := NewThrottleLogRepository(setupTestDB(t))
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, repo.CreateLog(ctx, newLog(1, entity.ThrottleStatusSent, baseTime.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, repo.CreateLog(ctx, newLog(2, entity.ThrottleStatusSent, baseTime)))

	logs, err := repo.FindLogsByUser(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, baseTime.Add(2*time.Minute).Equal(logs[0].CreatedAt))
	assert.True(t, baseTime.Add(time.Minute).Equal(logs[1].CreatedAt))

	logs, err = repo.FindLogsByUser(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}
