package main

import (
	"context"
	"log/slog"
	"os"

	"proximity/config"
	"proximity/internal/delivery"
	"proximity/internal/delivery/api"
	apimiddleware "proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/router/handler"
	"proximity/internal/domain/service"
	"proximity/internal/infra/auth"
	"proximity/internal/infra/cache"
	"proximity/internal/infra/clock"
	logs "proximity/internal/infra/log"
	"proximity/internal/infra/metrics"
	"proximity/internal/infra/persistence/postgres"
	"proximity/internal/infra/pubsub"
	"proximity/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		func(cfg *config.Config) *config.GeofenceConfig {
			return cfg.Geofence
		},
		logs.New,
		context.Background,
		postgres.New,
		cache.NewClient,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewThrottleLogRepository,
			postgres.NewGeofenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			clock.New,
			metrics.NewMetrics,
			newDeduplicator,
			newTokenService,
		),
	)
}

// newTokenService leaves the query API open when no operator secret is configured
func newTokenService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.OperatorSecret == "" {
		return nil, nil
	}

	return auth.NewJWTService(cfg.Auth, clock)
}

// newDeduplicator claims event ids in Redis, or forwards every event when Redis is absent
func newDeduplicator(cfg *config.Config, client *redis.Client) service.EventDeduplicator {
	if client == nil {
		return cache.NewNoopDeduplicator()
	}

	return cache.NewRedisDeduplicator(client, cfg.Redis.DedupTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEventNormalizer,
			impl.NewIngestService,
			impl.NewLedgerService,
			impl.NewGeofenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewLedgerHandler,
			handler.NewGeofenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
