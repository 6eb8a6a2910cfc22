// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push target registered by a user's app installation.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`        // Device row id.
	UserID    int64     `json:"user_id"`   // Owner of the device.
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token, the channel contact token.
	Platform  string    `json:"platform"`  // ios or android.
	IsActive  bool      `json:"is_active"` // Inactive devices never receive pushes.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
