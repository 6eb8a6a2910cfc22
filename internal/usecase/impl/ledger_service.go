package impl

import (
	"context"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/repository"
	"proximity/internal/errors"
	"proximity/internal/usecase"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type ledgerService struct {
	logRepo repository.ThrottleLogRepository
}

// NewLedgerService creates a new ledger query service instance
func NewLedgerService(logRepo repository.ThrottleLogRepository) usecase.LedgerUsecase {
	return &ledgerService{
		logRepo: logRepo,
	}
}

// GetUserHistory returns a user's newest decisions first
func (s *ledgerService) GetUserHistory(ctx context.Context, userID int64, limit int) ([]*entity.NotificationThrottleLog, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	logs, err := s.logRepo.FindLogsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find logs by user")
	}

	return logs, nil
}

// GetEventDecisions returns the decisions written for one provider event
func (s *ledgerService) GetEventDecisions(ctx context.Context, eventID string) ([]*entity.NotificationThrottleLog, error) {
	logs, err := s.logRepo.FindLogsByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find logs by event")
	}

	return logs, nil
}
