// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

const testSecret = "whsec_test"

func newTestAPI(service ServiceInterface, secret string) *chi.Mux {
	api := NewAPI(service, secret, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func TestSubscriptionWebhook(t *testing.T) {
	testCases := []struct {
		name         string
		secret       string
		header       string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name:   "valid event",
			secret: testSecret,
			header: testSecret,
			body:   `{"type": "subscription.updated", "data": {"customer_id": "cus_1", "status": "active"}}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleSubscriptionEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "wrong secret",
			secret:       testSecret,
			header:       "whsec_other",
			body:         `{}`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing secret header",
			secret:       testSecret,
			header:       "",
			body:         `{}`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unconfigured secret rejects everything",
			secret:       "",
			header:       "",
			body:         `{}`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid body",
			secret:       testSecret,
			header:       testSecret,
			body:         `{"type": `,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/billing", strings.NewReader(tc.body))
			if tc.header != "" {
				req.Header.Set(SecretHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			newTestAPI(mockService, tc.secret).ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d", tc.expectedCode, rec.Code)
			}
		})
	}
}
