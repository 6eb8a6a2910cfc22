package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Circles use the center columns and radius; polygons keep their ring as GeoJSON.
type GeofenceModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	LocationID      *int64 `gorm:"index"`
	BranchID        *int64 `gorm:"index"`
	BrandID         *int64 `gorm:"index"`
	Description     string `gorm:"type:text"`
	Tag             string `gorm:"type:varchar(100)"`
	ExternalID      string `gorm:"type:varchar(255);index"`
	Type            string `gorm:"type:varchar(20);not null"`
	CenterLatitude  float64
	CenterLongitude float64
	Radius          float64
	Polygon         datatypes.JSON
	IsActive        bool    `gorm:"not null"`
	SyncedToRadar   bool    `gorm:"not null"`
	RadarGeofenceID *string `gorm:"type:varchar(255);uniqueIndex"`
	LastSyncedAt    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}
