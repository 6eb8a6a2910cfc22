package postgres

import (
	"context"
	"time"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/errors"
	"proximity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// throttleLogRepository implements the repository.ThrottleLogRepository interface.
type throttleLogRepository struct {
	db *gorm.DB
}

// NewThrottleLogRepository is the constructor for throttleLogRepository.
func NewThrottleLogRepository(db *gorm.DB) repository.ThrottleLogRepository {
	return &throttleLogRepository{
		db: db,
	}
}

// CreateLog appends a ledger row.
func (repo *throttleLogRepository) CreateLog(ctx context.Context, log *entity.NotificationThrottleLog) error {
	if log.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate log id")
		}
		log.ID = id
	}

	logM := fromThrottleLogDomain(log)
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create throttle log")
	}

	log.CreatedAt = logM.CreatedAt

	return nil
}

// CountSentSince counts the user's sent rows created at or after since.
func (repo *throttleLogRepository) CountSentSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64

	if err := repo.sentByUser(ctx, userID).
		Where("created_at >= ?", since.UTC()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sent notifications")
	}

	return count, nil
}

// LatestSentAt returns when the user's newest sent row was written.
func (repo *throttleLogRepository) LatestSentAt(ctx context.Context, userID int64) (*time.Time, error) {
	var logM model.NotificationThrottleLogModel

	err := repo.sentByUser(ctx, userID).
		Select("created_at").
		Order("created_at DESC").
		Limit(1).
		Take(&logM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest sent notification")
	}

	latest := logM.CreatedAt

	return &latest, nil
}

// HasSentSince reports whether a sent row for the scoped brand, branch or offer exists at or after since.
func (repo *throttleLogRepository) HasSentSince(
	ctx context.Context,
	userID int64,
	scope entity.ThrottleLogScope,
	since time.Time,
) (bool, error) {
	query := repo.sentByUser(ctx, userID).Where("created_at >= ?", since.UTC())

	if scope.BrandID != nil {
		query = query.Where("brand_id = ?", *scope.BrandID)
	}
	if scope.BranchID != nil {
		query = query.Where("branch_id = ?", *scope.BranchID)
	}
	if scope.OfferID != nil {
		query = query.Where("offer_id = ?", *scope.OfferID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check notification cooldown")
	}

	return count > 0, nil
}

// FindLogsByUser returns the user's rows, newest first.
func (repo *throttleLogRepository) FindLogsByUser(ctx context.Context, userID int64, limit int) ([]*entity.NotificationThrottleLog, error) {
	var logModels []*model.NotificationThrottleLogModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find throttle logs by user")
	}

	return toThrottleLogDomains(logModels), nil
}

// FindLogsByEvent returns the rows written for one provider event.
func (repo *throttleLogRepository) FindLogsByEvent(ctx context.Context, eventID string) ([]*entity.NotificationThrottleLog, error) {
	var logModels []*model.NotificationThrottleLogModel

	if err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find throttle logs by event")
	}

	return toThrottleLogDomains(logModels), nil
}

func (repo *throttleLogRepository) sentByUser(ctx context.Context, userID int64) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.NotificationThrottleLogModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.ThrottleStatusSent))
}

// --- Mapper Functions ---

func toThrottleLogDomains(logModels []*model.NotificationThrottleLogModel) []*entity.NotificationThrottleLog {
	logs := make([]*entity.NotificationThrottleLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toThrottleLogDomain(logM))
	}

	return logs
}

// toThrottleLogDomain converts a GORM NotificationThrottleLogModel to a domain entity.
func toThrottleLogDomain(data *model.NotificationThrottleLogModel) *entity.NotificationThrottleLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationThrottleLog{
		ID:               data.ID,
		UserID:           data.UserID,
		GeofenceID:       data.GeofenceID,
		BrandID:          data.BrandID,
		BranchID:         data.BranchID,
		OfferID:          data.OfferID,
		NotificationType: data.NotificationType,
		EventType:        entity.EventType(data.EventType),
		EventID:          data.EventID,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Status:           entity.ThrottleStatus(data.Status),
		Reason:           entity.ThrottleReason(data.Reason),
		Payload:          data.Payload,
		CreatedAt:        data.CreatedAt.UTC(),
	}
}

// fromThrottleLogDomain converts a domain entity to a GORM NotificationThrottleLogModel.
func fromThrottleLogDomain(data *entity.NotificationThrottleLog) *model.NotificationThrottleLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationThrottleLogModel{
		ID:               data.ID,
		UserID:           data.UserID,
		GeofenceID:       data.GeofenceID,
		BrandID:          data.BrandID,
		BranchID:         data.BranchID,
		OfferID:          data.OfferID,
		NotificationType: data.NotificationType,
		EventType:        string(data.EventType),
		EventID:          data.EventID,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Status:           string(data.Status),
		Reason:           string(data.Reason),
		Payload:          data.Payload,
		CreatedAt:        data.CreatedAt.UTC(),
	}
}
