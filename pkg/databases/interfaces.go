// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package databases

import (
	"context"

	"github.com/canonical/memory-tenant-service/internal/turso"
	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
	"github.com/canonical/memory-tenant-service/pkg/billing"
)

type ServiceInterface interface {
	List(ctx context.Context, identity *authentication.Identity) ([]*types.TenantMapping, *billing.Summary, error)
	Provision(ctx context.Context, identity *authentication.Identity, req *ProvisionRequest) (*types.TenantMapping, error)
	Disable(ctx context.Context, identity *authentication.Identity, tenantID string) error
}

type StorageInterface interface {
	GetTenantMapping(ctx context.Context, keyHash, tenantID string) (*types.TenantMapping, error)
	UpsertTenantMapping(ctx context.Context, m *types.TenantMapping) (*types.TenantMapping, error)
	ListTenantMappings(ctx context.Context, keyHash string) ([]*types.TenantMapping, error)
	SetTenantMappingStatus(ctx context.Context, keyHash, tenantID, status string) error
	TouchTenantMappingVerified(ctx context.Context, keyHash, tenantID string) error
}

type ProviderInterface interface {
	CreateDatabase(ctx context.Context, name string) (*turso.Database, error)
	CreateDatabaseToken(ctx context.Context, name string) (string, error)
	DeleteDatabase(ctx context.Context, name string) error
	InitSchema(ctx context.Context, dbURL, authToken string) error
	Exec(ctx context.Context, dbURL, authToken, stmt string) error
}

type BillingInterface interface {
	Enforce(ctx context.Context, userID string) (*types.BillingContext, int, error)
	RecordUsage(ctx context.Context, bc *types.BillingContext, tenantID string) error
	Summary(ctx context.Context, userID string) (*billing.Summary, error)
}
