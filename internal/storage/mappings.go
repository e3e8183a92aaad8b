// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/memory-tenant-service/internal/types"
)

var mappingColumns = []string{
	"id", "key_hash", "tenant_id", "database_url", "auth_token", "name",
	"status", "source", "metadata", "created_by", "owner_type",
	"owner_user_id", "org_id", "billing_customer_id", "owner_scope_key",
	"created_at", "updated_at", "last_verified_at",
}

func scanMapping(row sq.RowScanner) (*types.TenantMapping, error) {
	var m types.TenantMapping
	var metadata []byte

	err := row.Scan(
		&m.ID, &m.KeyHash, &m.TenantID, &m.DatabaseURL, &m.AuthToken, &m.Name,
		&m.Status, &m.Source, &metadata, &m.CreatedBy, &m.OwnerType,
		&m.OwnerUserID, &m.OrgID, &m.BillingCustomerID, &m.OwnerScopeKey,
		&m.CreatedAt, &m.UpdatedAt, &m.LastVerifiedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &m.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode mapping metadata: %w", err)
		}
	}

	return &m, nil
}

func (s *Storage) GetTenantMapping(ctx context.Context, keyHash, tenantID string) (*types.TenantMapping, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantMapping")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(mappingColumns...).
		From("tenant_mappings").
		Where(sq.Eq{"key_hash": keyHash, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	m, err := scanMapping(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant mapping: %w", err)
	}

	return m, nil
}

// UpsertTenantMapping inserts or updates a mapping keyed on
// (key_hash, tenant_id). The uniqueness constraint is the guard against
// duplicate-provision races; concurrent writers resolve last-writer-wins on
// the non-identity columns.
func (s *Storage) UpsertTenantMapping(ctx context.Context, m *types.TenantMapping) (*types.TenantMapping, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertTenantMapping")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mapping ID: %w", err)
	}

	metadata, err := json.Marshal(m.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mapping metadata: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenant_mappings").
		Columns(
			"id", "key_hash", "tenant_id", "database_url", "auth_token", "name",
			"status", "source", "metadata", "created_by", "owner_type",
			"owner_user_id", "org_id", "billing_customer_id", "owner_scope_key",
			"last_verified_at",
		).
		Values(
			id.String(), m.KeyHash, m.TenantID, m.DatabaseURL, m.AuthToken, m.Name,
			m.Status, m.Source, metadata, m.CreatedBy, m.OwnerType,
			m.OwnerUserID, m.OrgID, m.BillingCustomerID, m.OwnerScopeKey,
			sq.Expr("now()"),
		).
		Suffix(`ON CONFLICT (key_hash, tenant_id) DO UPDATE SET
			database_url = EXCLUDED.database_url,
			auth_token = EXCLUDED.auth_token,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			source = EXCLUDED.source,
			metadata = EXCLUDED.metadata,
			owner_type = EXCLUDED.owner_type,
			owner_user_id = EXCLUDED.owner_user_id,
			org_id = EXCLUDED.org_id,
			billing_customer_id = EXCLUDED.billing_customer_id,
			owner_scope_key = EXCLUDED.owner_scope_key,
			updated_at = now(),
			last_verified_at = now()
		RETURNING ` + strings.Join(mappingColumns, ", ")).
		QueryRowContext(ctx)

	saved, err := scanMapping(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tenant mapping: %w", err)
	}

	return saved, nil
}

func (s *Storage) ListTenantMappings(ctx context.Context, keyHash string) ([]*types.TenantMapping, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantMappings")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(mappingColumns...).
		From("tenant_mappings").
		Where(sq.Eq{"key_hash": keyHash}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant mappings: %w", err)
	}
	defer rows.Close()

	var mappings []*types.TenantMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant mapping: %w", err)
		}
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return mappings, nil
}

func (s *Storage) SetTenantMappingStatus(ctx context.Context, keyHash, tenantID, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantMappingStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_mappings").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"key_hash": keyHash, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update mapping status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) TouchTenantMappingVerified(ctx context.Context, keyHash, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchTenantMappingVerified")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("tenant_mappings").
		Set("last_verified_at", sq.Expr("now()")).
		Where(sq.Eq{"key_hash": keyHash, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to touch mapping verification: %w", err)
	}

	return nil
}

// CountActiveTenantsByScope counts ready tenants under the stable owner
// scope key, not the rotation-scoped key hash, so quota accounting survives
// credential rotation. Distinct tenant IDs, not rows: a rotation whose
// cleanup failed leaves the same tenant reachable under two key hashes, and
// that tenant still occupies exactly one quota slot.
func (s *Storage) CountActiveTenantsByScope(ctx context.Context, ownerScopeKey string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveTenantsByScope")
	defer span.End()

	var count int
	err := activeTenantCountQuery(s.db.Statement(ctx), ownerScopeKey).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active tenants: %w", err)
	}

	return count, nil
}

func activeTenantCountQuery(stmt sq.StatementBuilderType, ownerScopeKey string) sq.SelectBuilder {
	return stmt.
		Select("count(DISTINCT tenant_id)").
		From("tenant_mappings").
		Where(sq.Eq{"owner_scope_key": ownerScopeKey, "status": types.MappingStatusReady})
}

// CloneTenantMappings copies every mapping under oldKeyHash to equivalent
// rows under newKeyHash, preserving all other fields. The insert is an
// upsert so a retried rotation is idempotent. Returns the number of rows
// cloned; zero rows is a no-op, not an error.
func (s *Storage) CloneTenantMappings(ctx context.Context, oldKeyHash, newKeyHash string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CloneTenantMappings")
	defer span.End()

	mappings, err := s.ListTenantMappings(ctx, oldKeyHash)
	if err != nil {
		return 0, err
	}

	for _, m := range mappings {
		clone := *m
		clone.KeyHash = newKeyHash
		if _, err := s.UpsertTenantMapping(ctx, &clone); err != nil {
			return 0, fmt.Errorf("failed to clone mapping for tenant %s: %w", m.TenantID, err)
		}
	}

	return len(mappings), nil
}

func (s *Storage) DeleteTenantMappingsByKeyHash(ctx context.Context, keyHash string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenantMappingsByKeyHash")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_mappings").
		Where(sq.Eq{"key_hash": keyHash}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete tenant mappings: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
