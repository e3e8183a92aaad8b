// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Database-hosting provider (platform API used to create and delete
	// the per-tenant databases).
	ProviderAPIURL   string        `envconfig:"provider_api_url" required:"true"`
	ProviderAPIToken string        `envconfig:"provider_api_token" required:"true"`
	ProviderOrg      string        `envconfig:"provider_org" required:"true"`
	ProviderGroup    string        `envconfig:"provider_group" default:"default"`
	ProviderSettle   time.Duration `envconfig:"provider_settle_delay" default:"2s"`

	// Identity resolution.
	APIKeyPrefix      string `envconfig:"api_key_prefix" default:"msk_"`
	OIDCIssuer        string `envconfig:"oidc_issuer"`
	OIDCJwksURL       string `envconfig:"oidc_jwks_url"`
	OIDCRequiredScope string `envconfig:"oidc_required_scope" default:"memory:api"`
	KratosPublicURL   string `envconfig:"kratos_public_url"`

	// Billing webhook shared secret.
	BillingWebhookSecret string `envconfig:"billing_webhook_secret"`
}
