// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"proximity/internal/domain/entity"
	"proximity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register a token that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push target lookups.
type DeviceRepository interface {
	// CreateDevice registers a push target for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID int64) ([]*entity.UserDevice, error)

	// DeactivateDevice stops a device from receiving pushes, e.g. after the channel rejected its token.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
