package entity

import (
	"time"

	"github.com/google/uuid"
)

// ThrottleStatus is the terminal state of one notification decision.
type ThrottleStatus string

const (
	ThrottleStatusSent      ThrottleStatus = "sent"
	ThrottleStatusThrottled ThrottleStatus = "throttled"
	ThrottleStatusFailed    ThrottleStatus = "failed"
	ThrottleStatusSkipped   ThrottleStatus = "skipped"
)

// String returns the string representation of the ThrottleStatus.
func (s ThrottleStatus) String() string {
	return string(s)
}

// ThrottleReason explains a throttled, skipped or failed decision.
// The empty reason means sending is allowed.
type ThrottleReason string

const (
	ReasonNone ThrottleReason = ""

	ReasonQuietHours       ThrottleReason = "quiet_hours"
	ReasonDailyLimit       ThrottleReason = "daily_limit"
	ReasonWeeklyLimit      ThrottleReason = "weekly_limit"
	ReasonMinInterval      ThrottleReason = "min_interval"
	ReasonBrandCooldown    ThrottleReason = "brand_cooldown"
	ReasonLocationCooldown ThrottleReason = "location_cooldown"
	ReasonOfferCooldown    ThrottleReason = "offer_cooldown"

	ReasonUnresolvedContext ThrottleReason = "unresolved_context"
	ReasonIgnoredEventType  ThrottleReason = "ignored_event_type"
	ReasonNoMatch           ThrottleReason = "no_match"
	ReasonNoDevice          ThrottleReason = "no_device"

	ReasonDispatchFailed ThrottleReason = "dispatch_failed"
)

// String returns the string representation of the ThrottleReason.
func (r ThrottleReason) String() string {
	return string(r)
}

// NotificationThrottleLog is one append-only ledger row. Every decision writes
// exactly one row and rows are never updated.
type NotificationThrottleLog struct {
	ID               uuid.UUID      `json:"id"`                // Ledger row id.
	UserID           int64          `json:"user_id"`           // User the decision was made for.
	GeofenceID       *int64         `json:"geofence_id"`       // Geofence that triggered the event, if known.
	BrandID          *int64         `json:"brand_id"`          // Brand context, if resolved.
	BranchID         *int64         `json:"branch_id"`         // Branch context, if resolved.
	OfferID          *int64         `json:"offer_id"`          // Offer selected for the notification, if any.
	NotificationType string         `json:"notification_type"` // Kind of notification, e.g. geofence_offer.
	EventType        EventType      `json:"event_type"`        // entry, exit, dwell or unknown.
	EventID          string         `json:"event_id"`          // Provider event id.
	Latitude         float64        `json:"latitude"`          // User latitude at decision time.
	Longitude        float64        `json:"longitude"`         // User longitude at decision time.
	Status           ThrottleStatus `json:"status"`            // sent, throttled, failed or skipped.
	Reason           ThrottleReason `json:"reason,omitempty"`  // Why the notification was not sent.
	Payload          map[string]any `json:"payload,omitempty"` // Snapshot of the notification or failure detail.
	CreatedAt        time.Time      `json:"created_at"`        // Decision timestamp.
}

// ThrottleLogScope narrows a ledger lookup to one dimension. Nil fields are ignored.
type ThrottleLogScope struct {
	BrandID  *int64
	BranchID *int64
	OfferID  *int64
}
