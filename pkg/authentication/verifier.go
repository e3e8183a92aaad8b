// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

// JWTVerifier validates end-user bearer tokens. The token subject is the
// user ID; authorization is a single API scope, since row-level access is
// already bounded by the caller's key hash.
type JWTVerifier struct {
	verifier      *oidc.IDTokenVerifier
	requiredScope string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// VerifyToken returns the token subject when the signature, issuer and
// required scope all check out. Scope failures are authorization failures,
// not authentication failures.
func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var claims struct {
		Subject string   `json:"sub"`
		Scope   string   `json:"scope"`
		Scopes  []string `json:"scp"`
	}
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return "", err
	}

	if v.requiredScope == "" {
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
		return "", apierror.Forbidden("no access policy configured")
	}

	if v.hasScope(claims.Scope, claims.Scopes) {
		return claims.Subject, nil
	}

	v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
	return "", apierror.Forbidden("token is missing the required scope")
}

// hasScope accepts either the space-separated "scope" claim or the "scp"
// array; issuers differ on which one they emit.
func (v *JWTVerifier) hasScope(scope string, scopes []string) bool {
	if scope != "" && slices.Contains(strings.Fields(scope), v.requiredScope) {
		return true
	}
	return slices.Contains(scopes, v.requiredScope)
}

func NewJWTVerifier(
	provider ProviderInterface,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: provider.Verifier(&oidc.Config{
			SkipClientIDCheck: true,
			SkipIssuerCheck:   false,
		}),
		requiredScope: requiredScope,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:      verifier,
		requiredScope: requiredScope,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
