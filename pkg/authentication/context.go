// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Identity is the authenticated caller: a stable owner identity plus the
// opaque rotation-scoped key hash used to look up tenant mappings.
type Identity struct {
	UserID  string
	KeyHash string
	// Scheme records how the caller authenticated: api_key, jwt or session.
	Scheme string
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var identityContextKey = contextKey{}

// WithIdentity returns a new context with the given identity derived from the parent context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns nil and false if no identity is present.
func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	return identity, ok
}
