// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package databases

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
)

func newTestAPI(service ServiceInterface) *chi.Mux {
	api := NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func authenticated(r *http.Request) *http.Request {
	return r.WithContext(authentication.WithIdentity(r.Context(), testIdentity))
}

func TestHandlers_Unauthenticated(t *testing.T) {
	mux := newTestAPI(nil)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v0/databases", nil),
		httptest.NewRequest(http.MethodPost, "/api/v0/databases", strings.NewReader(`{"tenant_id":"p"}`)),
		httptest.NewRequest(http.MethodDelete, "/api/v0/databases/p", nil),
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", req.Method, req.URL.Path, rec.Code)
		}
	}
}

func TestHandlers_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().List(gomock.Any(), testIdentity).Return(
		[]*types.TenantMapping{{TenantID: "proj-1", DatabaseURL: "libsql://p1.example", AuthToken: "secret", Status: "ready", Source: "override"}},
		&billingSummaryFixture,
		nil,
	)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/v0/databases", nil))
	rec := httptest.NewRecorder()
	newTestAPI(mockService).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Databases) != 1 || resp.Databases[0].TenantID != "proj-1" {
		t.Errorf("unexpected databases %+v", resp.Databases)
	}
	if resp.Billing == nil || resp.Billing.Plan != "individual" {
		t.Errorf("unexpected billing summary %+v", resp.Billing)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Error("auth token must not appear in the response")
	}
}

func TestHandlers_Provision(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "success with default mode",
			body: `{"tenant_id": "proj-1"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Provision(gomock.Any(), testIdentity, gomock.Any()).DoAndReturn(
					func(_ interface{}, _ *authentication.Identity, req *ProvisionRequest) (*types.TenantMapping, error) {
						if req.Mode != ModeProvision {
							t.Errorf("expected default mode provision, got %s", req.Mode)
						}
						return &types.TenantMapping{TenantID: req.TenantID, Status: types.MappingStatusReady}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid json",
			body:         `{"tenant_id": `,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing tenant id",
			body:         `{"mode": "provision"}`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "attach without credentials",
			body:         `{"tenant_id": "proj-1", "mode": "attach"}`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "quota rejection surfaces as 429",
			body: `{"tenant_id": "proj-1"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Provision(gomock.Any(), testIdentity, gomock.Any()).Return(nil, apierror.RateLimit("over quota"))
			},
			expectedCode: http.StatusTooManyRequests,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/databases", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			newTestAPI(mockService).ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d: %s", tc.expectedCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandlers_Disable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Disable(gomock.Any(), testIdentity, "proj-1").Return(nil)

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/v0/databases/proj-1", nil))
	rec := httptest.NewRecorder()
	newTestAPI(mockService).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != types.MappingStatusDisabled {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestHandlers_DisableNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Disable(gomock.Any(), testIdentity, "ghost").Return(apierror.NotFound("no tenant database found for ghost"))

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/v0/databases/ghost", nil))
	rec := httptest.NewRecorder()
	newTestAPI(mockService).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Code      string `json:"code"`
		Retryable bool   `json:"retryable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Code != apierror.CodeNotFound || body.Retryable {
		t.Errorf("unexpected error body %+v", body)
	}
}
