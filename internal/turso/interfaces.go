// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package turso

import (
	"context"
)

// Database is the provider's record of one created database instance.
type Database struct {
	Name     string `json:"Name"`
	Hostname string `json:"Hostname"`
}

type ClientInterface interface {
	// CreateDatabase provisions a new isolated database instance.
	CreateDatabase(ctx context.Context, name string) (*Database, error)
	// CreateDatabaseToken mints a scoped access token for a database.
	CreateDatabaseToken(ctx context.Context, name string) (string, error)
	// DeleteDatabase removes a database instance. Used as the
	// compensating action for failed provisioning.
	DeleteDatabase(ctx context.Context, name string) error
	// InitSchema applies the baseline memory schema to a fresh database.
	InitSchema(ctx context.Context, dbURL, authToken string) error
	// Exec runs a single statement against a tenant database. Used for
	// schema init and attach-mode reachability checks.
	Exec(ctx context.Context, dbURL, authToken, stmt string) error
}
