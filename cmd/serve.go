// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/memory-tenant-service/internal/config"
	"github.com/canonical/memory-tenant-service/internal/db"
	"github.com/canonical/memory-tenant-service/internal/kratos"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring/prometheus"
	"github.com/canonical/memory-tenant-service/internal/storage"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/turso"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
	"github.com/canonical/memory-tenant-service/pkg/billing"
	"github.com/canonical/memory-tenant-service/pkg/credentials"
	"github.com/canonical/memory-tenant-service/pkg/databases"
	"github.com/canonical/memory-tenant-service/pkg/web"
	"github.com/canonical/memory-tenant-service/pkg/webhooks"
	"github.com/canonical/memory-tenant-service/pkg/workspace"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("memory-tenant-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	provider := turso.NewClient(
		turso.Config{
			APIURL:   specs.ProviderAPIURL,
			APIToken: specs.ProviderAPIToken,
			Org:      specs.ProviderOrg,
			Group:    specs.ProviderGroup,
		},
		tracer,
		monitor,
		logger,
	)

	var jwtVerifier authentication.TokenVerifierInterface
	if specs.OIDCIssuer != "" {
		jwtVerifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJwksURL,
			specs.OIDCRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		logger.Info("JWT authentication is disabled, only api keys and sessions are accepted")
	}

	var sessionChecker authentication.SessionCheckerInterface
	if specs.KratosPublicURL != "" {
		sessionChecker = kratos.NewClient(specs.KratosPublicURL, tracer, monitor, logger)
	}

	resolver := authentication.NewResolver(s, tracer, monitor, logger)
	authMiddleware := authentication.NewMiddleware(
		resolver,
		jwtVerifier,
		sessionChecker,
		specs.APIKeyPrefix,
		tracer,
		monitor,
		logger,
	)

	workspaceService := workspace.NewService(s, tracer, monitor, logger)
	billingService := billing.NewService(s, workspaceService, tracer, monitor, logger)
	databasesService := databases.NewService(s, provider, billingService, specs.ProviderSettle, tracer, monitor, logger)
	credentialsService := credentials.NewService(s, specs.APIKeyPrefix, tracer, monitor, logger)
	webhooksService := webhooks.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		web.RouterConfig{
			DatabasesAPI:   databases.NewAPI(databasesService, tracer, monitor, logger),
			CredentialsAPI: credentials.NewAPI(credentialsService, tracer, monitor, logger),
			WebhooksAPI:    webhooks.NewAPI(webhooksService, specs.BillingWebhookSecret, tracer, monitor, logger),
			AuthMiddleware: authMiddleware,
			DBClient:       dbClient,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
