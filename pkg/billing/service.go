// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package billing gates tenant creation on plan quotas and records the
// usage events downstream invoicing attributes new tenants with.
package billing

import (
	"context"
	"fmt"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/plan"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/workspace"
)

// EventTenantCreated is the meter event recorded after a tenant mapping is
// durably persisted.
const EventTenantCreated = "tenant_database.created"

// Summary is the billing figure set returned alongside tenant listings.
type Summary struct {
	Plan             string `json:"plan"`
	IncludedProjects int    `json:"included_projects"`
	OverageUnitCents int64  `json:"overage_unit_cents"`
	HardCap          int    `json:"hard_cap"`
	ActiveCount      int    `json:"active_count"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	workspace WorkspaceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	ws WorkspaceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		workspace: ws,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// ResolveContext loads the owner's current billing context. The owner scope
// key derived here is stable across credential rotations so billing history
// is never fragmented by key rotation.
func (s *Service) ResolveContext(ctx context.Context, userID string) (*types.BillingContext, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.ResolveContext")
	defer span.End()

	wc, err := s.workspace.Resolve(ctx, userID, workspace.ResolveOptions{})
	if err != nil {
		return nil, apierror.Internal("failed to resolve workspace", err)
	}
	if wc == nil {
		return nil, apierror.Unauthorized("unknown user")
	}

	bc := &types.BillingContext{
		OwnerType:   wc.OwnerType,
		OwnerUserID: wc.UserID,
		OrgID:       wc.OrgID,
		Plan:        wc.Plan,
	}

	if wc.OwnerType == types.OwnerTypeOrganization && wc.OrgID != nil {
		bc.OwnerScopeKey = fmt.Sprintf("org:%s", *wc.OrgID)
		org, err := s.storage.GetOrganizationByID(ctx, *wc.OrgID)
		if err == nil {
			bc.BillingCustomerID = org.BillingCustomerID
		}
	} else {
		bc.OwnerScopeKey = fmt.Sprintf("user:%s", wc.UserID)
		user, err := s.storage.GetUserByID(ctx, wc.UserID)
		if err == nil {
			bc.BillingCustomerID = user.BillingCustomerID
		}
	}

	return bc, nil
}

// Enforce rejects tenant creation only when a hard cap is configured and
// already reached. An included-count without a hard cap permits metered
// overage; overage is a billing concern, not an admission-control concern.
func (s *Service) Enforce(ctx context.Context, userID string) (*types.BillingContext, int, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.Enforce")
	defer span.End()

	bc, err := s.ResolveContext(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.storage.CountActiveTenantsByScope(ctx, bc.OwnerScopeKey)
	if err != nil {
		return nil, 0, apierror.Internal("failed to count active tenants", err)
	}

	limits := plan.LimitsFor(plan.Tier(bc.Plan))
	if limits.HardCap != plan.NoHardCap && count >= limits.HardCap {
		return nil, count, apierror.RateLimit(
			fmt.Sprintf("plan %s allows at most %d tenant databases", bc.Plan, limits.HardCap))
	}

	return bc, count, nil
}

// RecordUsage writes the durable meter event for one newly created tenant.
// Callers invoke it only after the mapping is persisted, never before.
func (s *Service) RecordUsage(ctx context.Context, bc *types.BillingContext, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.RecordUsage")
	defer span.End()

	event := &types.BillingEvent{
		OwnerScopeKey:     bc.OwnerScopeKey,
		BillingCustomerID: bc.BillingCustomerID,
		EventType:         EventTenantCreated,
		Quantity:          1,
		Metadata:          map[string]string{"tenant_id": tenantID},
	}

	if err := s.storage.CreateBillingEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to record usage event: %w", err)
	}

	return nil
}

func (s *Service) Summary(ctx context.Context, userID string) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.Summary")
	defer span.End()

	bc, err := s.ResolveContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.storage.CountActiveTenantsByScope(ctx, bc.OwnerScopeKey)
	if err != nil {
		return nil, apierror.Internal("failed to count active tenants", err)
	}

	limits := plan.LimitsFor(plan.Tier(bc.Plan))
	return &Summary{
		Plan:             bc.Plan,
		IncludedProjects: limits.IncludedProjects,
		OverageUnitCents: limits.OverageUnitCents,
		HardCap:          limits.HardCap,
		ActiveCount:      count,
	}, nil
}
