// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/storage"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package workspace -destination ./mock_workspace.go -source=./interfaces.go

func strPtr(s string) *string { return &s }

func newTestService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestResolve_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	wc, err := newTestService(mockStorage).Resolve(context.Background(), "ghost", ResolveOptions{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wc != nil {
		t.Fatalf("expected nil context for unknown user, got %+v", wc)
	}
}

func TestResolve_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, errors.New("boom"))

	_, err := newTestService(mockStorage).Resolve(context.Background(), "user-1", ResolveOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolve_PersonalWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &types.User{
		ID:                "user-1",
		Plan:              "pro",
		RoutingMode:       types.RoutingModeAuto,
		DatabaseURL:       strPtr("libsql://personal.db.example"),
		DatabaseAuthToken: strPtr("tok"),
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)

	wc, err := newTestService(mockStorage).Resolve(context.Background(), "user-1", ResolveOptions{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wc.OwnerType != types.OwnerTypeUser {
		t.Errorf("expected user owner type, got %s", wc.OwnerType)
	}
	if wc.Plan != "individual" {
		t.Errorf("expected legacy pro plan to normalize to individual, got %s", wc.Plan)
	}
	if wc.DatabaseURL == nil || *wc.DatabaseURL != "libsql://personal.db.example" {
		t.Errorf("expected personal credentials to be carried, got %+v", wc.DatabaseURL)
	}
}

func TestResolve_AutoRouting(t *testing.T) {
	activeStatus := "active"
	subID := "sub-1"

	acme := &types.Organization{
		ID:                 "org-acme",
		Slug:               "acme",
		Plan:               "team",
		SubscriptionStatus: &activeStatus,
		SubscriptionID:     &subID,
		DatabaseURL:        strPtr("libsql://acme.db.example"),
		DatabaseAuthToken:  strPtr("org-tok"),
	}

	user := &types.User{
		ID:          "user-1",
		Plan:        "free",
		RoutingMode: types.RoutingModeAuto,
	}

	testCases := []struct {
		name       string
		projectID  string
		user       *types.User
		setupMocks func(*MockStorageInterface)
		assert     func(*testing.T, *types.WorkspaceContext)
	}{
		{
			name:      "slug inference selects member org",
			projectID: "github.com/acme/widgets",
			user:      user,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationBySlug(gomock.Any(), "acme").Return(acme, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-acme", "user-1").Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeOrganization {
					t.Fatalf("expected org workspace, got %s", wc.OwnerType)
				}
				if wc.Plan != "team" {
					t.Errorf("expected team plan, got %s", wc.Plan)
				}
			},
		},
		{
			name:      "owner slug matching is case insensitive",
			projectID: "github.com/Acme/widgets",
			user:      user,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationBySlug(gomock.Any(), "Acme").Return(acme, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-acme", "user-1").Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeOrganization {
					t.Fatalf("expected org workspace, got %s", wc.OwnerType)
				}
			},
		},
		{
			name:      "non member falls back to personal",
			projectID: "github.com/acme/widgets",
			user:      user,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationBySlug(gomock.Any(), "acme").Return(acme, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-acme", "user-1").Return(nil, storage.ErrNotFound)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeUser {
					t.Fatalf("expected personal fallback, got %s", wc.OwnerType)
				}
			},
		},
		{
			name:      "org without credentials falls back to personal",
			projectID: "github.com/acme/widgets",
			user:      user,
			setupMocks: func(m *MockStorageInterface) {
				bare := *acme
				bare.DatabaseURL = nil
				m.EXPECT().GetOrganizationBySlug(gomock.Any(), "acme").Return(&bare, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-acme", "user-1").Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeUser {
					t.Fatalf("expected personal fallback, got %s", wc.OwnerType)
				}
			},
		},
		{
			name:      "unknown slug falls back to personal",
			projectID: "github.com/stranger/widgets",
			user:      user,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationBySlug(gomock.Any(), "stranger").Return(nil, storage.ErrNotFound)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeUser {
					t.Fatalf("expected personal fallback, got %s", wc.OwnerType)
				}
			},
		},
		{
			name:      "explicit mapping wins over slug inference",
			projectID: "github.com/vendor-name/widgets",
			user: &types.User{
				ID:          "user-1",
				RoutingMode: types.RoutingModeAuto,
				OrgMappings: []types.OrgMapping{{OwnerLogin: "vendor-name", OrgID: "org-acme"}},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByID(gomock.Any(), "org-acme").Return(acme, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-acme", "user-1").Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeOrganization {
					t.Fatalf("expected mapped org workspace, got %s", wc.OwnerType)
				}
				if wc.OrgID == nil || *wc.OrgID != "org-acme" {
					t.Errorf("expected org-acme, got %v", wc.OrgID)
				}
			},
		},
		{
			name:      "failed mapping falls through to slug inference",
			projectID: "github.com/acme/widgets",
			user: &types.User{
				ID:          "user-1",
				RoutingMode: types.RoutingModeAuto,
				OrgMappings: []types.OrgMapping{{OwnerLogin: "acme", OrgID: "org-gone"}},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByID(gomock.Any(), "org-gone").Return(nil, storage.ErrNotFound)
				m.EXPECT().GetOrganizationBySlug(gomock.Any(), "acme").Return(acme, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-acme", "user-1").Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			assert: func(t *testing.T, wc *types.WorkspaceContext) {
				if wc.OwnerType != types.OwnerTypeOrganization {
					t.Fatalf("expected slug-inferred org workspace, got %s", wc.OwnerType)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), tc.user.ID).Return(tc.user, nil)
			tc.setupMocks(mockStorage)

			wc, err := newTestService(mockStorage).Resolve(context.Background(), tc.user.ID, ResolveOptions{ProjectID: tc.projectID})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tc.assert(t, wc)
		})
	}
}

func TestResolve_ActiveWorkspace(t *testing.T) {
	activeStatus := "active"

	org := &types.Organization{
		ID:                 "org-1",
		Slug:               "acme",
		Plan:               "team",
		SubscriptionStatus: &activeStatus,
		DatabaseURL:        strPtr("libsql://acme.db.example"),
	}

	testCases := []struct {
		name       string
		user       *types.User
		opts       ResolveOptions
		setupMocks func(*MockStorageInterface)
		expected   string
	}{
		{
			name: "active org selected",
			user: &types.User{ID: "user-1", RoutingMode: types.RoutingModeActiveWorkspace, ActiveOrgID: strPtr("org-1")},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(&types.Membership{}, nil)
			},
			expected: types.OwnerTypeOrganization,
		},
		{
			name: "no active org means personal",
			user: &types.User{ID: "user-1", RoutingMode: types.RoutingModeActiveWorkspace},
			setupMocks: func(m *MockStorageInterface) {
			},
			expected: types.OwnerTypeUser,
		},
		{
			name: "membership revoked means personal",
			user: &types.User{ID: "user-1", RoutingMode: types.RoutingModeActiveWorkspace, ActiveOrgID: strPtr("org-1")},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expected: types.OwnerTypeUser,
		},
		{
			name: "unprovisioned org with fallback option returns personal",
			user: &types.User{ID: "user-1", RoutingMode: types.RoutingModeActiveWorkspace, ActiveOrgID: strPtr("org-1")},
			opts: ResolveOptions{FallbackToPersonal: true},
			setupMocks: func(m *MockStorageInterface) {
				bare := *org
				bare.DatabaseURL = nil
				m.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(&bare, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(&types.Membership{}, nil)
			},
			expected: types.OwnerTypeUser,
		},
		{
			name: "unprovisioned org without fallback returns org with nil credentials",
			user: &types.User{ID: "user-1", RoutingMode: types.RoutingModeActiveWorkspace, ActiveOrgID: strPtr("org-1")},
			setupMocks: func(m *MockStorageInterface) {
				bare := *org
				bare.DatabaseURL = nil
				m.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(&bare, nil)
				m.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(&types.Membership{}, nil)
			},
			expected: types.OwnerTypeOrganization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), tc.user.ID).Return(tc.user, nil)
			tc.setupMocks(mockStorage)

			wc, err := newTestService(mockStorage).Resolve(context.Background(), tc.user.ID, tc.opts)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if wc.OwnerType != tc.expected {
				t.Errorf("expected owner type %s, got %s", tc.expected, wc.OwnerType)
			}
			if tc.name == "unprovisioned org without fallback returns org with nil credentials" && wc.DatabaseURL != nil {
				t.Errorf("expected nil credentials, got %v", *wc.DatabaseURL)
			}
		})
	}
}

func TestParseRepoOwner(t *testing.T) {
	testCases := []struct {
		projectID string
		expected  string
	}{
		{"github.com/acme/widgets", "acme"},
		{"https://github.com/acme/widgets", "acme"},
		{"https://github.com/acme/widgets.git", "acme"},
		{"gitlab.example.com/team/subgroup", "team"},
		{"acme/widgets", "acme"},
		{"github.com/acme", "acme"},
		{"widgets", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.projectID, func(t *testing.T) {
			if got := ParseRepoOwner(tc.projectID); got != tc.expected {
				t.Errorf("ParseRepoOwner(%q) = %q, expected %q", tc.projectID, got, tc.expected)
			}
		})
	}
}
