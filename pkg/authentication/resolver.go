// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/storage"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver turns raw credentials into an Identity backed by the user store.
type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HashAPIKey derives the rotation-scoped lookup key from a raw API key.
func HashAPIKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

func (r *Resolver) ResolveAPIKey(ctx context.Context, rawKey string) (*Identity, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.ResolveAPIKey")
	defer span.End()

	keyHash := HashAPIKey(rawKey)

	user, err := r.storage.GetUserByAPIKeyHash(ctx, keyHash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			r.logger.Security().AuthnFailure("unknown", "api_key")
			return nil, fmt.Errorf("unknown api key")
		}
		return nil, fmt.Errorf("failed to resolve api key: %w", err)
	}

	return &Identity{UserID: user.ID, KeyHash: keyHash, Scheme: "api_key"}, nil
}

func (r *Resolver) ResolveUserID(ctx context.Context, userID string) (*Identity, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.ResolveUserID")
	defer span.End()

	user, err := r.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			r.logger.Security().AuthnFailure(userID, "jwt")
			return nil, fmt.Errorf("unknown user")
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	// The user's current key hash keys the tenant mappings even when the
	// caller did not authenticate with the key itself.
	return &Identity{UserID: user.ID, KeyHash: user.APIKeyHash, Scheme: "jwt"}, nil
}
