// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

const testAPIKeyPrefix = "msk_"

func newTestMiddleware(resolver ResolverInterface, verifier TokenVerifierInterface, session SessionCheckerInterface) *Middleware {
	return NewMiddleware(resolver, verifier, session, testAPIKeyPrefix, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestMiddleware_Authenticate(t *testing.T) {
	identity := &Identity{UserID: "user-123", KeyHash: "hash-123", Scheme: "api_key"}

	tests := []struct {
		name               string
		authHeader         string
		cookieHeader       string
		setupMocks         func(*MockResolverInterface, *MockTokenVerifierInterface, *MockSessionCheckerInterface)
		expectedStatusCode int
	}{
		{
			name:               "missing credentials rejects request",
			setupMocks:         func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "malformed authorization header rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "api key resolves identity",
			authHeader: "Bearer msk_abc123",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				r.EXPECT().ResolveAPIKey(gomock.Any(), "msk_abc123").Return(identity, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "unknown api key rejects request",
			authHeader: "Bearer msk_unknown",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				r.EXPECT().ResolveAPIKey(gomock.Any(), "msk_unknown").Return(nil, fmt.Errorf("unknown api key"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "jwt bearer verifies and resolves subject",
			authHeader: "Bearer eyJ.some.jwt",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "eyJ.some.jwt").Return("user-123", nil)
				r.EXPECT().ResolveUserID(gomock.Any(), "user-123").Return(identity, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "jwt verification failure rejects request",
			authHeader: "Bearer eyJ.bad.jwt",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "eyJ.bad.jwt").Return("", fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "jwt missing required scope is forbidden",
			authHeader: "Bearer eyJ.scoped.jwt",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "eyJ.scoped.jwt").Return("", apierror.Forbidden("missing required scope or subject not allowed"))
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:         "session cookie resolves identity",
			cookieHeader: "ory_kratos_session=abc",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				s.EXPECT().CheckSession(gomock.Any(), "ory_kratos_session=abc").Return("user-123", nil)
				r.EXPECT().ResolveUserID(gomock.Any(), "user-123").Return(identity, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:         "invalid session rejects request",
			cookieHeader: "ory_kratos_session=expired",
			setupMocks: func(r *MockResolverInterface, v *MockTokenVerifierInterface, s *MockSessionCheckerInterface) {
				s.EXPECT().CheckSession(gomock.Any(), "ory_kratos_session=expired").Return("", fmt.Errorf("session expired"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockResolverInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockSession := NewMockSessionCheckerInterface(ctrl)
			tt.setupMocks(mockResolver, mockVerifier, mockSession)

			mdw := newTestMiddleware(mockResolver, mockVerifier, mockSession)

			handler := mdw.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok := GetIdentity(r.Context())
				if !ok || got.UserID != identity.UserID {
					t.Error("expected identity in request context")
				}
				w.Write([]byte("success"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/databases", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookieHeader != "" {
				req.Header.Set("Cookie", tt.cookieHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rec.Code)
			}
		})
	}
}

func TestHashAPIKey(t *testing.T) {
	h1 := HashAPIKey("msk_abc")
	h2 := HashAPIKey("msk_abc")
	h3 := HashAPIKey("msk_abd")

	if h1 != h2 {
		t.Error("hashing must be deterministic")
	}
	if h1 == h3 {
		t.Error("different keys must not collide")
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}
