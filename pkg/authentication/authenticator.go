// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

// NewJWTAuthenticator builds the token verifier for the configured issuer,
// preferring an explicit JWKS URL over OIDC discovery when one is set.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if jwksURL != "" {
		idTokenVerifier, err := NewProviderWithJWKS(ctx, issuer, jwksURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %v", err)
		}
		logger.Infof("JWT authentication enabled with manual JWKS URL: %s", jwksURL)
		return NewJWTVerifierDirect(idTokenVerifier, requiredScope, tracer, monitor, logger), nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}
	logger.Infof("JWT authentication enabled with OIDC discovery for issuer: %s", issuer)
	return NewJWTVerifier(provider, requiredScope, tracer, monitor, logger), nil
}
