package service

import "context"

// EventDeduplicator claims provider event ids so webhook retries are processed once.
type EventDeduplicator interface {
	// Claim reports whether the caller is the first to see eventID.
	Claim(ctx context.Context, eventID string) (bool, error)

	// Release forgets eventID so a failed hand-off can be retried by the provider.
	Release(ctx context.Context, eventID string) error
}
