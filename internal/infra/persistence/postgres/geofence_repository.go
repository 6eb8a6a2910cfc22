package postgres

import (
	"context"
	"encoding/json"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/errors"
	"proximity/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateGeofence persists a geofence.
func (repo *geofenceRepository) CreateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	if err := geofence.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	geofenceM, err := fromGeofenceDomain(geofence)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(geofenceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("provider geofence id already linked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence")
	}

	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// FindGeofenceByID retrieves a live geofence by local id.
func (repo *geofenceRepository) FindGeofenceByID(ctx context.Context, id int64) (*entity.Geofence, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindGeofenceByExternalID retrieves a live geofence by its external id.
func (repo *geofenceRepository) FindGeofenceByExternalID(ctx context.Context, externalID string) (*entity.Geofence, error) {
	return repo.findOne(ctx, "external_id = ?", externalID)
}

// FindGeofenceByRadarID retrieves a live geofence by the provider-side id.
func (repo *geofenceRepository) FindGeofenceByRadarID(ctx context.Context, radarID string) (*entity.Geofence, error) {
	return repo.findOne(ctx, "radar_geofence_id = ?", radarID)
}

func (repo *geofenceRepository) findOne(ctx context.Context, query string, arg any) (*entity.Geofence, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence")
	}

	return toGeofenceDomain(&geofenceM)
}

// --- Mapper Functions ---

// toGeofenceDomain converts a GORM GeofenceModel to a domain Geofence entity.
func toGeofenceDomain(data *model.GeofenceModel) (*entity.Geofence, error) {
	if data == nil {
		return nil, nil
	}

	geofence := &entity.Geofence{
		ID:              data.ID,
		LocationID:      data.LocationID,
		BranchID:        data.BranchID,
		BrandID:         data.BrandID,
		Description:     data.Description,
		Tag:             data.Tag,
		ExternalID:      data.ExternalID,
		Type:            entity.GeofenceType(data.Type),
		Center:          orb.Point{data.CenterLongitude, data.CenterLatitude},
		Radius:          data.Radius,
		IsActive:        data.IsActive,
		SyncedToRadar:   data.SyncedToRadar,
		RadarGeofenceID: data.RadarGeofenceID,
		LastSyncedAt:    data.LastSyncedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		geofence.DeletedAt = &deletedAt
	}

	if len(data.Polygon) > 0 {
		geometry, err := geojson.UnmarshalGeometry(data.Polygon)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode geofence polygon")
		}
		if polygon, ok := geometry.Coordinates.(orb.Polygon); ok && len(polygon) > 0 {
			geofence.Polygon = polygon[0]
		}
	}

	return geofence, nil
}

// fromGeofenceDomain converts a domain Geofence entity to a GORM GeofenceModel.
func fromGeofenceDomain(data *entity.Geofence) (*model.GeofenceModel, error) {
	if data == nil {
		return nil, nil
	}

	geofenceM := &model.GeofenceModel{
		ID:              data.ID,
		LocationID:      data.LocationID,
		BranchID:        data.BranchID,
		BrandID:         data.BrandID,
		Description:     data.Description,
		Tag:             data.Tag,
		ExternalID:      data.ExternalID,
		Type:            string(data.Type),
		CenterLatitude:  data.Center.Lat(),
		CenterLongitude: data.Center.Lon(),
		Radius:          data.Radius,
		IsActive:        data.IsActive,
		SyncedToRadar:   data.SyncedToRadar,
		RadarGeofenceID: data.RadarGeofenceID,
		LastSyncedAt:    data.LastSyncedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.Polygon) > 0 {
		raw, err := json.Marshal(geojson.NewGeometry(orb.Polygon{data.Polygon}))
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode geofence polygon")
		}
		geofenceM.Polygon = datatypes.JSON(raw)
	}

	return geofenceM, nil
}
