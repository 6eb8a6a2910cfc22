package main

import (
	"context"
	"log/slog"
	"os"

	"proximity/config"
	"proximity/internal/delivery"
	"proximity/internal/delivery/worker"
	"proximity/internal/delivery/worker/handler"
	"proximity/internal/domain/service"
	"proximity/internal/errors"
	"proximity/internal/infra/cache"
	"proximity/internal/infra/clock"
	logs "proximity/internal/infra/log"
	"proximity/internal/infra/metrics"
	"proximity/internal/infra/notification"
	"proximity/internal/infra/persistence/postgres"
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
		// Policy sections are handed to the business components by pointer
		func(cfg *config.Config) *config.ThrottleConfig {
			return cfg.Throttle
		},
		func(cfg *config.Config) *config.MatchingConfig {
			return cfg.Matching
		},
		func(cfg *config.Config) *config.DispatchConfig {
			return cfg.Dispatch
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
			postgres.NewTransactionManager,
			postgres.NewThrottleLogRepository,
			postgres.NewGeofenceRepository,
			postgres.NewCatalogRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.New,
			metrics.NewMetrics,
			newFirebaseService,
			newUserLocker,
		),
	)
}

// newFirebaseService creates the push channel; decisions are recorded as failed while it is absent
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, dispatches will be recorded as failed")

		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newUserLocker picks the lock scope for the per-user read-check-append
func newUserLocker(cfg *config.Config, client *redis.Client, logger *slog.Logger) service.UserLocker {
	if !cfg.Throttle.SerializePerUser {
		return nil
	}
	if client == nil {
		return cache.NewLocalLocker()
	}

	return cache.NewRedisLocker(client, logger, cfg.Redis.LockTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewThrottleService,
			impl.NewRelevanceService,
			impl.NewDecisionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
