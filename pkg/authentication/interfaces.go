// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/memory-tenant-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the subject (user ID) if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type ResolverInterface interface {
	// ResolveAPIKey resolves a raw API key to an identity.
	ResolveAPIKey(ctx context.Context, rawKey string) (*Identity, error)
	// ResolveUserID resolves an already-verified user ID to an identity.
	ResolveUserID(ctx context.Context, userID string) (*Identity, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByAPIKeyHash(ctx context.Context, keyHash string) (*types.User, error)
}

type SessionCheckerInterface interface {
	CheckSession(ctx context.Context, cookie string) (string, error)
}
