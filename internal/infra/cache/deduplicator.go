package cache

import (
	"context"
	"time"

	"proximity/internal/domain/service"
	"proximity/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	eventKeyPrefix  = "geofence:event:"
	defaultDedupTTL = 24 * time.Hour
	claimedState    = "claimed"
)

type redisDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduplicator claims event ids with SET NX so a provider retry is forwarded once within ttl.
func NewRedisDeduplicator(client *redis.Client, ttl time.Duration) service.EventDeduplicator {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}

	return &redisDeduplicator{
		client: client,
		ttl:    ttl,
	}
}

func (d *redisDeduplicator) Claim(ctx context.Context, eventID string) (bool, error) {
	claimed, err := d.client.SetNX(ctx, eventKeyPrefix+eventID, claimedState, d.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim event id")
	}

	return claimed, nil
}

func (d *redisDeduplicator) Release(ctx context.Context, eventID string) error {
	if err := d.client.Del(ctx, eventKeyPrefix+eventID).Err(); err != nil {
		return errors.Wrap(err, "failed to release event id")
	}

	return nil
}

type noopDeduplicator struct{}

// NewNoopDeduplicator forwards every event; used when Redis is not configured.
func NewNoopDeduplicator() service.EventDeduplicator {
	return noopDeduplicator{}
}

func (noopDeduplicator) Claim(context.Context, string) (bool, error) {
	return true, nil
}

func (noopDeduplicator) Release(context.Context, string) error {
	return nil
}
