// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

type Middleware struct {
	resolver     ResolverInterface
	jwtVerifier  TokenVerifierInterface
	session      SessionCheckerInterface
	apiKeyPrefix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the caller's identity before any storage access.
// Scheme order: bearer API key (recognized by prefix), bearer JWT, kratos
// session cookie. Unauthenticated requests are rejected here.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)

			var identity *Identity
			var err error

			switch {
			case found && strings.HasPrefix(token, m.apiKeyPrefix):
				identity, err = m.resolver.ResolveAPIKey(ctx, token)
			case found && m.jwtVerifier != nil:
				var userID string
				userID, err = m.jwtVerifier.VerifyToken(ctx, token)
				if err == nil {
					identity, err = m.resolver.ResolveUserID(ctx, userID)
				}
			case !found && m.session != nil && r.Header.Get("Cookie") != "":
				var userID string
				userID, err = m.session.CheckSession(ctx, r.Header.Get("Cookie"))
				if err == nil {
					identity, err = m.resolver.ResolveUserID(ctx, userID)
				}
			default:
				m.unauthorizedResponse(w, "missing credentials")
				return
			}

			if err != nil {
				m.logger.Debugf("authentication failed: %v", err)
				// A verified identity missing the required scope is a 403,
				// not a 401.
				var se *apierror.ServiceError
				if errors.As(err, &se) && se.Status == http.StatusForbidden {
					apierror.Write(w, se)
					return
				}
				m.unauthorizedResponse(w, "invalid credentials")
				return
			}

			ctx = WithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	apierror.Write(w, apierror.Unauthorized(message))
}

func NewMiddleware(
	resolver ResolverInterface,
	jwtVerifier TokenVerifierInterface,
	session SessionCheckerInterface,
	apiKeyPrefix string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		resolver:     resolver,
		jwtVerifier:  jwtVerifier,
		session:      session,
		apiKeyPrefix: apiKeyPrefix,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
