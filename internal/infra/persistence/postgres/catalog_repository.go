package postgres

import (
	"context"
	"time"

	"proximity/internal/domain/entity"
	"proximity/internal/domain/repository"
	"proximity/internal/errors"
	"proximity/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// The catalog tables are read-only from this service.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindUserInterestIDs returns the user's interest category ids.
func (repo *catalogRepository) FindUserInterestIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserInterestModel{}).
		Where("user_id = ?", userID).
		Order("category_id").
		Pluck("category_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user interests")
	}

	return ids, nil
}

// FindBrandCategoryIDs returns the brand's category ids.
func (repo *catalogRepository) FindBrandCategoryIDs(ctx context.Context, brandID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BrandCategoryModel{}).
		Where("brand_id = ?", brandID).
		Order("category_id").
		Pluck("category_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find brand categories")
	}

	return ids, nil
}

// FindActiveOffersByBrand returns the brand's active offers whose date window contains now.
func (repo *catalogRepository) FindActiveOffersByBrand(ctx context.Context, brandID int64, now time.Time) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	now = now.UTC()
	if err := repo.db.WithContext(ctx).
		Where("brand_id = ? AND status = ?", brandID, string(entity.OfferStatusActive)).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("id").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// FindBrandIDByBranch resolves the brand owning a branch.
func (repo *catalogRepository) FindBrandIDByBranch(ctx context.Context, branchID int64) (*int64, error) {
	var branchM model.BranchModel

	if err := repo.db.WithContext(ctx).
		Select("id", "brand_id").
		Where("id = ?", branchID).
		Take(&branchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find branch")
	}

	return &branchM.BrandID, nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:            data.ID,
		BrandID:       data.BrandID,
		Title:         data.Title,
		Description:   data.Description,
		Status:        entity.OfferStatus(data.Status),
		DiscountValue: data.DiscountValue,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		MaxClaims:     data.MaxClaims,
		ClaimsCount:   data.ClaimsCount,
	}
}
