package impl

import (
	"cmp"
	"context"
	"slices"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/domain/repository"
	"proximity/internal/domain/service"
	"proximity/internal/errors"
	"proximity/internal/usecase"

	"github.com/samber/lo"
)

type relevanceService struct {
	cfg         *config.MatchingConfig
	catalogRepo repository.CatalogRepository
	clock       service.Clock
}

// NewRelevanceService creates a new relevance matcher
func NewRelevanceService(
	cfg *config.MatchingConfig,
	catalogRepo repository.CatalogRepository,
	clock service.Clock,
) usecase.RelevanceUsecase {
	return &relevanceService{
		cfg:         cfg,
		catalogRepo: catalogRepo,
		clock:       clock,
	}
}

// Matches intersects the user's interests with the brand's categories
func (s *relevanceService) Matches(ctx context.Context, userID, brandID int64) (bool, error) {
	if !s.cfg.RequireInterestMatch {
		return true, nil
	}

	interests, err := s.catalogRepo.FindUserInterestIDs(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load user interests")
	}

	categories, err := s.catalogRepo.FindBrandCategoryIDs(ctx, brandID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load brand categories")
	}

	if len(lo.Intersect(interests, categories)) > 0 {
		return true, nil
	}

	return s.cfg.FallbackToAll, nil
}

// BestOffer returns the highest discount among the brand's available offers.
// Equal discounts go to the offer expiring first, offers without an end date last.
func (s *relevanceService) BestOffer(ctx context.Context, userID, brandID int64) (*entity.Offer, error) {
	matched, err := s.Matches(ctx, userID, brandID)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}

	now := s.clock.Now()

	offers, err := s.catalogRepo.FindActiveOffersByBrand(ctx, brandID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load brand offers")
	}

	available := lo.Filter(offers, func(offer *entity.Offer, _ int) bool {
		return offer != nil && offer.IsAvailable(now)
	})
	if len(available) == 0 {
		return nil, nil
	}

	slices.SortFunc(available, compareOffers)

	return available[0], nil
}

func compareOffers(a, b *entity.Offer) int {
	if c := cmp.Compare(b.DiscountValue, a.DiscountValue); c != 0 {
		return c
	}

	switch {
	case a.EndDate != nil && b.EndDate == nil:
		return -1
	case a.EndDate == nil && b.EndDate != nil:
		return 1
	case a.EndDate != nil && b.EndDate != nil:
		if c := a.EndDate.Compare(*b.EndDate); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.ID, b.ID)
}
