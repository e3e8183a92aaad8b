// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package databases manages the lifecycle of tenant database mappings:
// quota-gated provisioning, attachment of externally hosted databases,
// soft decommissioning and listing.
package databases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/db"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/storage"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/turso"
	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
	"github.com/canonical/memory-tenant-service/pkg/billing"
)

// Provisioning modes.
const (
	ModeProvision = "provision"
	ModeAttach    = "attach"
)

const compensationTimeout = 30 * time.Second

// ProvisionRequest carries everything needed to create or attach one
// tenant database.
type ProvisionRequest struct {
	TenantID    string
	Mode        string
	Name        *string
	DatabaseURL string
	AuthToken   string
	Metadata    map[string]string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	provider ProviderInterface
	billing  BillingInterface

	// settleDelay is the fixed wait between database creation and the
	// first schema statement. The provider exposes no readiness probe, so
	// this stays a delay rather than a poll; it is context-aware and
	// configurable.
	settleDelay time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provider ProviderInterface,
	billing BillingInterface,
	settleDelay time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		provider:    provider,
		billing:     billing,
		settleDelay: settleDelay,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (s *Service) List(ctx context.Context, identity *authentication.Identity) ([]*types.TenantMapping, *billing.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "databases.Service.List")
	defer span.End()

	mappings, err := s.storage.ListTenantMappings(ctx, identity.KeyHash)
	if err != nil {
		return nil, nil, apierror.Internal("failed to list tenant databases", err)
	}

	summary, err := s.billing.Summary(ctx, identity.UserID)
	if err != nil {
		return nil, nil, err
	}

	return mappings, summary, nil
}

// Provision creates or attaches the tenant database for
// (identity.KeyHash, req.TenantID). Provisioning is idempotent: an existing
// ready mapping is returned unchanged so retried client requests never
// create a second database. The uniqueness constraint on the mapping row is
// the actual guard against concurrent duplicates; this check is an
// optimization.
func (s *Service) Provision(ctx context.Context, identity *authentication.Identity, req *ProvisionRequest) (*types.TenantMapping, error) {
	ctx, span := s.tracer.Start(ctx, "databases.Service.Provision")
	defer span.End()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.storage.GetTenantMapping(ctx, identity.KeyHash, req.TenantID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, apierror.Internal("failed to check existing mapping", err)
	}
	if existing != nil && existing.Status == types.MappingStatusReady && req.Mode == ModeProvision {
		// A retried provision re-confirms the mapping is in use. The touch
		// is non-fatal bookkeeping and must not join the request
		// transaction.
		if err := s.storage.TouchTenantMappingVerified(db.WithoutTransaction(ctx), identity.KeyHash, req.TenantID); err != nil {
			s.logger.Warnf("failed to touch mapping verification for tenant %s: %v", req.TenantID, err)
		}
		return existing, nil
	}

	bc, _, err := s.billing.Enforce(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	var dbURL, authToken string
	var undo []func(context.Context) error

	switch req.Mode {
	case ModeProvision:
		dbURL, authToken, undo, err = s.provisionDatabase(ctx, req.TenantID)
		if err != nil {
			s.compensate(ctx, undo)
			return nil, err
		}
	case ModeAttach:
		if err := s.verifyAttachable(ctx, req.DatabaseURL, req.AuthToken); err != nil {
			return nil, err
		}
		dbURL, authToken = req.DatabaseURL, req.AuthToken
	}

	mapping := &types.TenantMapping{
		KeyHash:           identity.KeyHash,
		TenantID:          req.TenantID,
		DatabaseURL:       dbURL,
		AuthToken:         authToken,
		Name:              req.Name,
		Status:            types.MappingStatusReady,
		Source:            types.MappingSourceOverride,
		Metadata:          req.Metadata,
		CreatedBy:         identity.UserID,
		OwnerType:         bc.OwnerType,
		OwnerUserID:       bc.OwnerUserID,
		OrgID:             bc.OrgID,
		BillingCustomerID: bc.BillingCustomerID,
		OwnerScopeKey:     bc.OwnerScopeKey,
	}

	saved, err := s.storage.UpsertTenantMapping(ctx, mapping)
	if err != nil {
		// A provisioned-but-unrecorded database is equivalent to an
		// orphan and must not persist.
		s.compensate(ctx, undo)
		return nil, apierror.Internal("failed to persist tenant mapping", err)
	}

	// Usage is metered only after the mapping is durable. The write must
	// bypass the request transaction: a failed INSERT inside it would
	// abort the transaction and roll back the mapping, orphaning the
	// database that was just provisioned.
	if err := s.billing.RecordUsage(db.WithoutTransaction(ctx), bc, req.TenantID); err != nil {
		s.logger.Errorf("failed to record usage for tenant %s: %v", req.TenantID, err)
	}

	return saved, nil
}

// provisionDatabase runs the multi-step external provisioning flow and
// returns the undo list accumulated so far; callers run the undo list when
// any later step fails.
func (s *Service) provisionDatabase(ctx context.Context, tenantID string) (string, string, []func(context.Context) error, error) {
	var undo []func(context.Context) error

	name := instanceName(tenantID)

	db, err := s.provider.CreateDatabase(ctx, name)
	if err != nil {
		return "", "", undo, apierror.Internal("failed to create database instance", err)
	}
	undo = append(undo, func(cctx context.Context) error {
		return s.provider.DeleteDatabase(cctx, db.Name)
	})

	token, err := s.provider.CreateDatabaseToken(ctx, db.Name)
	if err != nil {
		return "", "", undo, apierror.Internal("failed to create database token", err)
	}

	dbURL := turso.URLScheme + db.Hostname

	// Freshly created instances are not immediately reachable; give the
	// provider a settle window before the first schema statement.
	select {
	case <-time.After(s.settleDelay):
	case <-ctx.Done():
		return "", "", undo, apierror.Internal("provisioning cancelled", ctx.Err())
	}

	if err := s.provider.InitSchema(ctx, dbURL, token); err != nil {
		return "", "", undo, apierror.Internal("failed to initialize tenant schema", err)
	}

	return dbURL, token, undo, nil
}

// verifyAttachable validates caller-supplied credentials cheaply before any
// network call, then with a trivial round-trip query.
func (s *Service) verifyAttachable(ctx context.Context, dbURL, authToken string) error {
	if !strings.HasPrefix(dbURL, turso.URLScheme) {
		return apierror.Validation(fmt.Sprintf("database_url must start with %s", turso.URLScheme))
	}
	if strings.TrimSpace(authToken) == "" {
		return apierror.Validation("auth_token is required for attach mode")
	}

	if err := s.provider.Exec(ctx, dbURL, authToken, "SELECT 1"); err != nil {
		return apierror.Validation("database is not reachable with the provided credentials")
	}

	return nil
}

// Disable soft-disables a mapping. Rows are never hard-deleted through the
// lifecycle API so audit and billing history survive.
func (s *Service) Disable(ctx context.Context, identity *authentication.Identity, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "databases.Service.Disable")
	defer span.End()

	if tenantID == "" {
		return apierror.Validation("tenant id is required")
	}

	err := s.storage.SetTenantMappingStatus(ctx, identity.KeyHash, tenantID, types.MappingStatusDisabled)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apierror.NotFound(fmt.Sprintf("no tenant database found for %s", tenantID))
		}
		return apierror.Internal("failed to disable tenant database", err)
	}

	return nil
}

// compensate runs the undo list in reverse on a detached context, so
// cleanup still happens when the request's own deadline has passed.
// Compensation failures are logged and never mask the original error.
func (s *Service) compensate(ctx context.Context, undo []func(context.Context) error) {
	if len(undo) == 0 {
		return
	}

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	for i := len(undo) - 1; i >= 0; i-- {
		if err := undo[i](cctx); err != nil {
			s.logger.Errorf("compensating action %d failed: %v", i, err)
		}
	}
}

func validateRequest(req *ProvisionRequest) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return apierror.Validation("tenant_id is required")
	}
	if req.Mode != ModeProvision && req.Mode != ModeAttach {
		return apierror.Validation("mode must be provision or attach")
	}
	return nil
}

// instanceName derives the provider-side database name. Tenant IDs are
// free-form, so the name carries a random suffix instead of the raw ID.
func instanceName(tenantID string) string {
	sanitized := strings.ToLower(tenantID)
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '-'
	}, sanitized)
	if len(sanitized) > 24 {
		sanitized = sanitized[:24]
	}
	return fmt.Sprintf("mem-%s-%s", strings.Trim(sanitized, "-"), uuid.NewString()[:8])
}
