package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationThrottleLogModel is the GORM-specific struct for the 'notification_throttle_logs' table.
// Rows are inserted once and never updated.
type NotificationThrottleLogModel struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID           int64             `gorm:"not null;index:idx_throttle_logs_user_status_created,priority:1"`
	GeofenceID       *int64            `gorm:"index"`
	BrandID          *int64            `gorm:"index:idx_throttle_logs_user_brand"`
	BranchID         *int64            `gorm:"index:idx_throttle_logs_user_branch"`
	OfferID          *int64            `gorm:"index:idx_throttle_logs_user_offer"`
	NotificationType string            `gorm:"type:varchar(50);not null"`
	EventType        string            `gorm:"type:varchar(20);not null"`
	EventID          string            `gorm:"type:varchar(255);index"`
	Latitude         float64           `gorm:"type:decimal(10,8)"`
	Longitude        float64           `gorm:"type:decimal(11,8)"`
	Status           string            `gorm:"type:varchar(20);not null;index:idx_throttle_logs_user_status_created,priority:2"`
	Reason           string            `gorm:"type:varchar(50)"`
	Payload          datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt        time.Time         `gorm:"not null;index:idx_throttle_logs_user_status_created,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationThrottleLogModel) TableName() string {
	return "notification_throttle_logs"
}
