// Package router contains routing and server setup for the ingest API.
package router

import (
	apimiddleware "proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/router/handler"
	"proximity/internal/domain/service"
	"proximity/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler  *handler.WebhookHandler
	LedgerHandler   *handler.LedgerHandler
	GeofenceHandler *handler.GeofenceHandler
	AuthMiddleware  *apimiddleware.AuthMiddleware
	Metrics         *metrics.Prometheus
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler  *handler.WebhookHandler
	ledgerHandler   *handler.LedgerHandler
	geofenceHandler *handler.GeofenceHandler
	auth            *apimiddleware.AuthMiddleware
	metrics         *metrics.Prometheus
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:  params.WebhookHandler,
		ledgerHandler:   params.LedgerHandler,
		geofenceHandler: params.GeofenceHandler,
		auth:            params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Provider webhooks
	webhooks := e.Group("/webhooks")
	{
		webhooks.POST("/geofence", r.webhookHandler.ReceiveGeofenceEvent)
	}

	// Operator query API
	apiV1 := e.Group("/api/v1", r.auth.Authenticate)

	ledgerGroup := apiV1.Group("/ledger", r.auth.RequireScope(service.ScopeLedgerRead))
	{
		ledgerGroup.GET("/users/:userId", r.ledgerHandler.GetUserHistory)
		ledgerGroup.GET("/events/:eventId", r.ledgerHandler.GetEventDecisions)
	}

	geofencesGroup := apiV1.Group("/geofences", r.auth.RequireScope(service.ScopeGeofenceRead))
	{
		geofencesGroup.GET("/:externalId/provider-payload", r.geofenceHandler.GetProviderPayload)
	}
}
