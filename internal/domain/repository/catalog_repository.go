package repository

import (
	"context"
	"time"

	"proximity/internal/domain/entity"
)

// CatalogRepository is the read-only view of the external relevance catalog:
// user interests, brand categories, branches and offers.
type CatalogRepository interface {
	// FindUserInterestIDs returns the category ids the user is interested in.
	FindUserInterestIDs(ctx context.Context, userID int64) ([]int64, error)

	// FindBrandCategoryIDs returns the category ids a brand is listed under.
	FindBrandCategoryIDs(ctx context.Context, brandID int64) ([]int64, error)

	// FindActiveOffersByBrand returns the brand's offers that are active at now.
	// Claim limits are left to the caller.
	FindActiveOffersByBrand(ctx context.Context, brandID int64, now time.Time) ([]*entity.Offer, error)

	// FindBrandIDByBranch resolves the brand owning a branch; nil when unknown.
	FindBrandIDByBranch(ctx context.Context, branchID int64) (*int64, error)
}
