// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/memory-tenant-service/internal/types"
)

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByAPIKeyHash(ctx context.Context, keyHash string) (*types.User, error)
	UpdateUserAPIKey(ctx context.Context, userID, keyHash, keyPrefix string) error

	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (*types.Organization, error)
	GetOrganizationByBillingCustomer(ctx context.Context, customerID string) (*types.Organization, error)
	UpdateOrganizationSubscription(ctx context.Context, orgID, plan string, status, subscriptionID *string) error

	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)

	GetTenantMapping(ctx context.Context, keyHash, tenantID string) (*types.TenantMapping, error)
	UpsertTenantMapping(ctx context.Context, m *types.TenantMapping) (*types.TenantMapping, error)
	ListTenantMappings(ctx context.Context, keyHash string) ([]*types.TenantMapping, error)
	SetTenantMappingStatus(ctx context.Context, keyHash, tenantID, status string) error
	TouchTenantMappingVerified(ctx context.Context, keyHash, tenantID string) error
	CountActiveTenantsByScope(ctx context.Context, ownerScopeKey string) (int, error)
	CloneTenantMappings(ctx context.Context, oldKeyHash, newKeyHash string) (int, error)
	DeleteTenantMappingsByKeyHash(ctx context.Context, keyHash string) (int64, error)

	CreateBillingEvent(ctx context.Context, e *types.BillingEvent) error
}
