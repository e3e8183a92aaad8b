// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/workspace"
)

type ServiceInterface interface {
	ResolveContext(ctx context.Context, userID string) (*types.BillingContext, error)
	Enforce(ctx context.Context, userID string) (*types.BillingContext, int, error)
	RecordUsage(ctx context.Context, bc *types.BillingContext, tenantID string) error
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	CountActiveTenantsByScope(ctx context.Context, ownerScopeKey string) (int, error)
	CreateBillingEvent(ctx context.Context, e *types.BillingEvent) error
}

type WorkspaceInterface interface {
	Resolve(ctx context.Context, userID string, opts workspace.ResolveOptions) (*types.WorkspaceContext, error)
}
