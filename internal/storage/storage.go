// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/memory-tenant-service/internal/db"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// userReadShapes lists the user column sets from richest to minimal.
// Optional columns were added over time; a deployment mid-migration may not
// have the newer ones yet, so reads fall through to the next shape on an
// undefined-column error instead of failing.
var userReadShapes = [][]string{
	{"id", "email", "plan", "routing_mode", "active_org_id", "database_url", "database_auth_token", "org_mappings", "api_key_hash", "api_key_prefix", "billing_customer_id", "created_at", "updated_at"},
	{"id", "email", "plan", "routing_mode", "active_org_id", "database_url", "database_auth_token", "api_key_hash", "api_key_prefix", "created_at", "updated_at"},
	{"id", "email", "plan", "database_url", "database_auth_token", "api_key_hash", "created_at", "updated_at"},
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByAPIKeyHash(ctx context.Context, keyHash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByAPIKeyHash")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"api_key_hash": keyHash})
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	// Shape probing cannot run inside the request transaction: an
	// undefined-column error would abort the transaction and the narrower
	// retry would fail with in_failed_sql_transaction instead. Nothing in a
	// request writes users before reading them, so reading from the pool
	// is safe.
	ctx = db.WithoutTransaction(ctx)

	var lastErr error
	for i, shape := range userReadShapes {
		u, err := s.scanUser(ctx, shape, where)
		if err == nil {
			return u, nil
		}
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		if !IsUnknownColumnError(err) {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		s.logger.Warnf("user read shape %d hit unknown column, retrying narrower: %v", i, err)
		lastErr = err
	}
	return nil, fmt.Errorf("failed to get user with any read shape: %w", lastErr)
}

func (s *Storage) scanUser(ctx context.Context, columns []string, where sq.Eq) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(columns...).
		From("users").
		Where(where).
		QueryRowContext(ctx)

	var u types.User
	var orgMappings []byte

	dest := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		switch c {
		case "id":
			dest = append(dest, &u.ID)
		case "email":
			dest = append(dest, &u.Email)
		case "plan":
			dest = append(dest, &u.Plan)
		case "routing_mode":
			dest = append(dest, &u.RoutingMode)
		case "active_org_id":
			dest = append(dest, &u.ActiveOrgID)
		case "database_url":
			dest = append(dest, &u.DatabaseURL)
		case "database_auth_token":
			dest = append(dest, &u.DatabaseAuthToken)
		case "org_mappings":
			dest = append(dest, &orgMappings)
		case "api_key_hash":
			dest = append(dest, &u.APIKeyHash)
		case "api_key_prefix":
			dest = append(dest, &u.APIKeyPrefix)
		case "billing_customer_id":
			dest = append(dest, &u.BillingCustomerID)
		case "created_at":
			dest = append(dest, &u.CreatedAt)
		case "updated_at":
			dest = append(dest, &u.UpdatedAt)
		}
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if u.RoutingMode == "" {
		u.RoutingMode = types.RoutingModeAuto
	}
	if len(orgMappings) > 0 {
		if err := json.Unmarshal(orgMappings, &u.OrgMappings); err != nil {
			return nil, fmt.Errorf("failed to decode org mappings: %w", err)
		}
	}

	return &u, nil
}

func (s *Storage) UpdateUserAPIKey(ctx context.Context, userID, keyHash, keyPrefix string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserAPIKey")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("api_key_hash", keyHash).
		Set("api_key_prefix", keyPrefix).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update api key: %w", err)
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

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetOrganizationBySlug(ctx context.Context, slug string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationBySlug")
	defer span.End()

	return s.getOrganization(ctx, sq.Expr("lower(slug) = lower(?)", slug))
}

func (s *Storage) GetOrganizationByBillingCustomer(ctx context.Context, customerID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByBillingCustomer")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"billing_customer_id": customerID})
}

func (s *Storage) getOrganization(ctx context.Context, where interface{}) (*types.Organization, error) {
	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "slug", "name", "plan", "subscription_status", "subscription_id", "billing_customer_id", "database_url", "database_auth_token", "created_at", "updated_at").
		From("organizations").
		Where(where).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Slug, &o.Name, &o.Plan, &o.SubscriptionStatus, &o.SubscriptionID, &o.BillingCustomerID, &o.DatabaseURL, &o.DatabaseAuthToken, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) UpdateOrganizationSubscription(ctx context.Context, orgID, plan string, status, subscriptionID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganizationSubscription")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("organizations").
		Set("subscription_status", status).
		Set("subscription_id", subscriptionID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orgID})

	if plan != "" {
		query = query.Set("plan", plan)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update organization subscription: %w", err)
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

func (s *Storage) GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "org_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"org_id": orgID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}
