// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/memory-tenant-service/internal/db"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
	"github.com/canonical/memory-tenant-service/pkg/credentials"
	"github.com/canonical/memory-tenant-service/pkg/databases"
	"github.com/canonical/memory-tenant-service/pkg/metrics"
	"github.com/canonical/memory-tenant-service/pkg/status"
	"github.com/canonical/memory-tenant-service/pkg/webhooks"
)

type RouterConfig struct {
	DatabasesAPI   *databases.API
	CredentialsAPI *credentials.API
	WebhooksAPI    *webhooks.API
	AuthMiddleware *authentication.Middleware
	DBClient       db.DBClientInterface
}

func NewRouter(
	cfg RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	cfg.WebhooksAPI.RegisterEndpoints(router)

	// Authenticated API surface, with write requests wrapped in a database
	// transaction.
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(cfg.DBClient, logger))
		r.Use(cfg.AuthMiddleware.Authenticate())

		cfg.DatabasesAPI.RegisterEndpoints(r)
		cfg.CredentialsAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
			MaxAge:         300,
		},
	)
}
