package postgres

import (
	"context"
	"testing"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_InterestsAndCategories(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create([]*model.UserInterestModel{
		{UserID: 1, CategoryID: 30},
		{UserID: 1, CategoryID: 10},
		{UserID: 2, CategoryID: 20},
	}).Error)
	require.NoError(t, db.Create([]*model.BrandCategoryModel{
		{BrandID: 3, CategoryID: 10},
		{BrandID: 4, CategoryID: 20},
	}).Error)

	interests, err := repo.FindUserInterestIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 30}, interests)

	categories, err := repo.FindBrandCategoryIDs(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, categories)

	none, err := repo.FindUserInterestIDs(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_FindActiveOffersByBrand(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	past := baseTime.Add(-24 * time.Hour)
	future := baseTime.Add(24 * time.Hour)
	require.NoError(t, db.Create([]*model.OfferModel{
		{ID: 1, BrandID: 3, Title: "open ended", Status: "active", DiscountValue: 10},
		{ID: 2, BrandID: 3, Title: "in window", Status: "active", DiscountValue: 20, StartDate: &past, EndDate: &future, MaxClaims: ptr(5), ClaimsCount: 1},
		{ID: 3, BrandID: 3, Title: "not started", Status: "active", DiscountValue: 30, StartDate: &future},
		{ID: 4, BrandID: 3, Title: "ended", Status: "active", DiscountValue: 40, EndDate: &past},
		{ID: 5, BrandID: 3, Title: "inactive", Status: "inactive", DiscountValue: 50},
		{ID: 6, BrandID: 4, Title: "other brand", Status: "active", DiscountValue: 60},
	}).Error)

	offers, err := repo.FindActiveOffersByBrand(ctx, 3, baseTime)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, int64(1), offers[0].ID)
	assert.Equal(t, int64(2), offers[1].ID)
	assert.Equal(t, entity.OfferStatusActive, offers[1].Status)
	assert.Equal(t, 5, *offers[1].MaxClaims)
	assert.Equal(t, 1, offers[1].ClaimsCount)
}

func TestCatalogRepository_FindBrandIDByBranch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.BranchModel{ID: 42, BrandID: 3, Name: "Main St"}).Error)

	brandID, err := repo.FindBrandIDByBranch(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, brandID)
	assert.Equal(t, int64(3), *brandID)

	missing, err := repo.FindBrandIDByBranch(ctx, 43)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
