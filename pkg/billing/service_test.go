// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/plan"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go

func strPtr(s string) *string { return &s }

func newTestService(s StorageInterface, ws WorkspaceInterface) *Service {
	return NewService(s, ws, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestResolveContext(t *testing.T) {
	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface, *MockWorkspaceInterface)
		expectedScope string
		expectedErr   bool
	}{
		{
			name: "personal scope",
			setupMocks: func(ms *MockStorageInterface, mw *MockWorkspaceInterface) {
				mw.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(
					&types.WorkspaceContext{OwnerType: types.OwnerTypeUser, UserID: "user-1", Plan: "free"}, nil)
				ms.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(
					&types.User{ID: "user-1", BillingCustomerID: strPtr("cus_1")}, nil)
			},
			expectedScope: "user:user-1",
		},
		{
			name: "organization scope",
			setupMocks: func(ms *MockStorageInterface, mw *MockWorkspaceInterface) {
				orgID := "org-1"
				mw.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(
					&types.WorkspaceContext{OwnerType: types.OwnerTypeOrganization, UserID: "user-1", OrgID: &orgID, Plan: "team"}, nil)
				ms.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(
					&types.Organization{ID: "org-1", BillingCustomerID: strPtr("cus_org")}, nil)
			},
			expectedScope: "org:org-1",
		},
		{
			name: "unknown user is rejected",
			setupMocks: func(ms *MockStorageInterface, mw *MockWorkspaceInterface) {
				mw.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockWorkspace := NewMockWorkspaceInterface(ctrl)
			tc.setupMocks(mockStorage, mockWorkspace)

			bc, err := newTestService(mockStorage, mockWorkspace).ResolveContext(context.Background(), "user-1")
			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if bc.OwnerScopeKey != tc.expectedScope {
				t.Errorf("expected scope %s, got %s", tc.expectedScope, bc.OwnerScopeKey)
			}
		})
	}
}

func TestEnforce(t *testing.T) {
	testCases := []struct {
		name        string
		plan        string
		activeCount int
		expectedErr string
	}{
		{name: "free under cap", plan: "free", activeCount: 0},
		{name: "free at cap is rejected", plan: "free", activeCount: 1, expectedErr: apierror.CodeRateLimit},
		{name: "team beyond included count is metered overage", plan: "team", activeCount: 42},
		{name: "past due is frozen", plan: "past_due", activeCount: 0, expectedErr: apierror.CodeRateLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockWorkspace := NewMockWorkspaceInterface(ctrl)

			mockWorkspace.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(
				&types.WorkspaceContext{OwnerType: types.OwnerTypeUser, UserID: "user-1", Plan: tc.plan}, nil)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
			mockStorage.EXPECT().CountActiveTenantsByScope(gomock.Any(), "user:user-1").Return(tc.activeCount, nil)

			bc, count, err := newTestService(mockStorage, mockWorkspace).Enforce(context.Background(), "user-1")
			if tc.expectedErr != "" {
				if err == nil {
					t.Fatal("expected rejection")
				}
				if se := apierror.From(err); se.Code != tc.expectedErr {
					t.Errorf("expected code %s, got %s", tc.expectedErr, se.Code)
				}
				if count != tc.activeCount {
					t.Errorf("expected count %d, got %d", tc.activeCount, count)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if bc == nil || bc.OwnerScopeKey != "user:user-1" {
				t.Errorf("unexpected billing context %+v", bc)
			}
		})
	}
}

func TestRecordUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockWorkspace := NewMockWorkspaceInterface(ctrl)

	bc := &types.BillingContext{OwnerScopeKey: "user:user-1", BillingCustomerID: strPtr("cus_1")}

	mockStorage.EXPECT().CreateBillingEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.BillingEvent) error {
			if e.EventType != EventTenantCreated {
				return errors.New("wrong event type")
			}
			if e.OwnerScopeKey != "user:user-1" {
				return errors.New("wrong scope key")
			}
			if e.Quantity != 1 {
				return errors.New("wrong quantity")
			}
			if e.Metadata["tenant_id"] != "tenant-1" {
				return errors.New("missing tenant id")
			}
			return nil
		})

	err := newTestService(mockStorage, mockWorkspace).RecordUsage(context.Background(), bc, "tenant-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockWorkspace := NewMockWorkspaceInterface(ctrl)

	mockWorkspace.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(
		&types.WorkspaceContext{OwnerType: types.OwnerTypeUser, UserID: "user-1", Plan: "individual"}, nil)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
	mockStorage.EXPECT().CountActiveTenantsByScope(gomock.Any(), "user:user-1").Return(5, nil)

	summary, err := newTestService(mockStorage, mockWorkspace).Summary(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.Plan != "individual" || summary.ActiveCount != 5 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.HardCap != plan.NoHardCap {
		t.Errorf("expected no hard cap for individual, got %d", summary.HardCap)
	}
	if summary.IncludedProjects != 3 || summary.OverageUnitCents != 500 {
		t.Errorf("unexpected limits in summary %+v", summary)
	}
}
