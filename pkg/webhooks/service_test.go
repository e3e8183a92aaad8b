// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

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

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func newTestService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestHandleSubscriptionEvent(t *testing.T) {
	org := &types.Organization{ID: "org-1", Slug: "acme"}

	testCases := []struct {
		name        string
		event       *SubscriptionEvent
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
	}{
		{
			name: "active subscription sets normalized plan",
			event: &SubscriptionEvent{
				Type: EventSubscriptionUpdated,
				Data: SubscriptionData{CustomerID: "cus_1", SubscriptionID: "sub_1", Status: "active", Plan: "business"},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByBillingCustomer(gomock.Any(), "cus_1").Return(org, nil)
				m.EXPECT().UpdateOrganizationSubscription(gomock.Any(), "org-1", "growth", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, status, subscriptionID *string) error {
						if status == nil || *status != "active" {
							return errors.New("expected active status")
						}
						if subscriptionID == nil || *subscriptionID != "sub_1" {
							return errors.New("expected subscription reference")
						}
						return nil
					})
			},
		},
		{
			name: "past due freezes the plan",
			event: &SubscriptionEvent{
				Type: EventSubscriptionUpdated,
				Data: SubscriptionData{CustomerID: "cus_1", SubscriptionID: "sub_1", Status: "past_due", Plan: "team"},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByBillingCustomer(gomock.Any(), "cus_1").Return(org, nil)
				m.EXPECT().UpdateOrganizationSubscription(gomock.Any(), "org-1", "past_due", gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "deletion clears subscription and downgrades to free",
			event: &SubscriptionEvent{
				Type: EventSubscriptionDeleted,
				Data: SubscriptionData{CustomerID: "cus_1", SubscriptionID: "sub_1"},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().UpdateOrganizationSubscription(gomock.Any(), "org-1", "free", gomock.Any(), gomock.Nil()).DoAndReturn(
					func(_ context.Context, _, _ string, status, _ *string) error {
						if status == nil || *status != types.SubscriptionCancelled {
							return errors.New("expected cancelled status")
						}
						return nil
					})
				m.EXPECT().GetOrganizationByBillingCustomer(gomock.Any(), "cus_1").Return(org, nil)
			},
		},
		{
			name: "unknown customer is acknowledged and dropped",
			event: &SubscriptionEvent{
				Type: EventSubscriptionCreated,
				Data: SubscriptionData{CustomerID: "cus_ghost"},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByBillingCustomer(gomock.Any(), "cus_ghost").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:        "missing customer id is an error",
			event:       &SubscriptionEvent{Type: EventSubscriptionCreated},
			setupMocks:  func(m *MockStorageInterface) {},
			expectedErr: true,
		},
		{
			name: "storage lookup failure propagates",
			event: &SubscriptionEvent{
				Type: EventSubscriptionCreated,
				Data: SubscriptionData{CustomerID: "cus_1"},
			},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetOrganizationByBillingCustomer(gomock.Any(), "cus_1").Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			err := newTestService(mockStorage).HandleSubscriptionEvent(context.Background(), tc.event)
			if tc.expectedErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
