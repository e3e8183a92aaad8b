// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package workspace decides, for one memory operation, which logical
// workspace (personal or organization) and which stored database
// credentials apply. It is an internal call invoked before touching tenant
// data, never a public endpoint.
package workspace

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/plan"
	"github.com/canonical/memory-tenant-service/internal/storage"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// ResolveOptions tune a single resolution.
type ResolveOptions struct {
	// FallbackToPersonal returns the personal workspace when the selected
	// organization has no database credentials yet. Without it the org
	// context is returned with nil credentials, meaning "not yet
	// provisioned", not an error.
	FallbackToPersonal bool
	// ProjectID is an optional repository/project identifier
	// (host/owner/repo) used for auto routing.
	ProjectID string
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Resolve returns the workspace context for userID, or nil when no user
// record exists. Any membership or organization lookup failure degrades to
// the personal workspace rather than raising; a request must never be
// stranded because of a routing-side lookup.
func (s *Service) Resolve(ctx context.Context, userID string, opts ResolveOptions) (*types.WorkspaceContext, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.Resolve")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	personal := &types.WorkspaceContext{
		OwnerType:         types.OwnerTypeUser,
		UserID:            user.ID,
		Plan:              string(plan.Normalize(plan.Input{UserPlan: user.Plan})),
		DatabaseURL:       user.DatabaseURL,
		DatabaseAuthToken: user.DatabaseAuthToken,
	}

	mode := user.RoutingMode
	if mode == "" {
		mode = types.RoutingModeAuto
	}

	if mode == types.RoutingModeAuto && opts.ProjectID != "" {
		return s.resolveAuto(ctx, user, personal, opts.ProjectID), nil
	}

	return s.resolveActive(ctx, user, personal, opts.FallbackToPersonal), nil
}

// resolveAuto infers the workspace from the repository owner login.
// Explicit owner-to-org mappings win over slug inference so operators can
// override ambiguous or colliding slugs.
func (s *Service) resolveAuto(ctx context.Context, user *types.User, personal *types.WorkspaceContext, projectID string) *types.WorkspaceContext {
	owner := ParseRepoOwner(projectID)
	if owner == "" {
		return personal
	}

	for _, m := range user.OrgMappings {
		if !strings.EqualFold(m.OwnerLogin, owner) {
			continue
		}
		org, err := s.storage.GetOrganizationByID(ctx, m.OrgID)
		if err != nil {
			s.logger.Debugf("mapped org %s not resolvable: %v", m.OrgID, err)
			break
		}
		if wc := s.orgContext(ctx, user, org, true); wc != nil {
			return wc
		}
		// First match wins; a mapping that fails membership or
		// credential checks falls through to slug inference.
		break
	}

	org, err := s.storage.GetOrganizationBySlug(ctx, owner)
	if err == nil {
		if wc := s.orgContext(ctx, user, org, true); wc != nil {
			return wc
		}
	}

	return personal
}

// resolveActive uses the user's currently selected organization, if any.
func (s *Service) resolveActive(ctx context.Context, user *types.User, personal *types.WorkspaceContext, fallbackToPersonal bool) *types.WorkspaceContext {
	if user.ActiveOrgID == nil || *user.ActiveOrgID == "" {
		return personal
	}

	org, err := s.storage.GetOrganizationByID(ctx, *user.ActiveOrgID)
	if err != nil {
		s.logger.Debugf("active org %s not resolvable: %v", *user.ActiveOrgID, err)
		return personal
	}

	if _, err := s.storage.GetMembership(ctx, org.ID, user.ID); err != nil {
		return personal
	}

	if !hasCredentials(org) && fallbackToPersonal {
		return personal
	}

	return s.buildOrgContext(user, org)
}

// orgContext returns the organization context when the user is a member
// and, because auto routing must never strand a request on a workspace
// without a database, the org has credentials. Returns nil otherwise.
func (s *Service) orgContext(ctx context.Context, user *types.User, org *types.Organization, requireCredentials bool) *types.WorkspaceContext {
	if _, err := s.storage.GetMembership(ctx, org.ID, user.ID); err != nil {
		return nil
	}
	if requireCredentials && !hasCredentials(org) {
		return nil
	}
	return s.buildOrgContext(user, org)
}

func (s *Service) buildOrgContext(user *types.User, org *types.Organization) *types.WorkspaceContext {
	status := ""
	if org.SubscriptionStatus != nil {
		status = *org.SubscriptionStatus
	}

	tier := plan.Normalize(plan.Input{
		SubscriptionStatus: status,
		OrgPlan:            org.Plan,
		HasSubscriptionRef: org.SubscriptionID != nil && *org.SubscriptionID != "",
		UserPlan:           user.Plan,
	})

	orgID := org.ID
	slug := org.Slug
	return &types.WorkspaceContext{
		OwnerType:         types.OwnerTypeOrganization,
		UserID:            user.ID,
		OrgID:             &orgID,
		OrgSlug:           &slug,
		Plan:              string(tier),
		DatabaseURL:       org.DatabaseURL,
		DatabaseAuthToken: org.DatabaseAuthToken,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

func hasCredentials(org *types.Organization) bool {
	return org.DatabaseURL != nil && *org.DatabaseURL != ""
}

// ParseRepoOwner extracts the owner login segment out of a project
// identifier like "github.com/acme/widgets", "acme/widgets" or a full
// clone URL. Returns the empty string when no owner can be parsed.
func ParseRepoOwner(projectID string) string {
	s := strings.TrimSpace(projectID)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimSuffix(s, ".git")

	parts := strings.Split(strings.Trim(s, "/"), "/")
	switch {
	case len(parts) >= 3:
		return parts[1]
	case len(parts) == 2:
		if strings.Contains(parts[0], ".") {
			return parts[1]
		}
		return parts[0]
	default:
		return ""
	}
}
