// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"

	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
)

type ServiceInterface interface {
	Rotate(ctx context.Context, identity *authentication.Identity) (*RotationResult, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpdateUserAPIKey(ctx context.Context, userID, keyHash, keyPrefix string) error
	CloneTenantMappings(ctx context.Context, oldKeyHash, newKeyHash string) (int, error)
	DeleteTenantMappingsByKeyHash(ctx context.Context, keyHash string) (int64, error)
}
