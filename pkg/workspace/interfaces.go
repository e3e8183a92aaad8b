// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"

	"github.com/canonical/memory-tenant-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, userID string, opts ResolveOptions) (*types.WorkspaceContext, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (*types.Organization, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
}
