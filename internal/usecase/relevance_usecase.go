package usecase

import (
	"context"

	"proximity/internal/domain/entity"
)

// RelevanceUsecase decides whether a brand is relevant to a user and which offer to surface
type RelevanceUsecase interface {
	// Matches reports whether the user's interests intersect the brand's categories
	Matches(ctx context.Context, userID, brandID int64) (bool, error)

	// BestOffer selects the brand's best available offer for the user, or nil when none qualifies
	BestOffer(ctx context.Context, userID, brandID int64) (*entity.Offer, error)
}
