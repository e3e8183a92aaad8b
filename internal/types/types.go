// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Routing modes stored on the user record.
const (
	RoutingModeAuto            = "auto"
	RoutingModeActiveWorkspace = "active_workspace"
)

// Owner types for tenant mappings and workspace contexts.
const (
	OwnerTypeUser         = "user"
	OwnerTypeOrganization = "organization"
)

// Tenant mapping statuses.
const (
	MappingStatusReady    = "ready"
	MappingStatusDisabled = "disabled"
)

// Tenant mapping sources.
const (
	MappingSourceAuto     = "auto"
	MappingSourceOverride = "override"
)

// Membership roles.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Subscription statuses as reported by the billing provider.
const (
	SubscriptionActive    = "active"
	SubscriptionPastDue   = "past_due"
	SubscriptionCancelled = "cancelled"
)

// OrgMapping is an explicit repository-owner-login to organization binding
// configured by the user, checked before slug inference during auto routing.
type OrgMapping struct {
	OwnerLogin string `json:"owner_login"`
	OrgID      string `json:"org_id"`
}

type User struct {
	ID                string       `db:"id"`
	Email             string       `db:"email"`
	Plan              string       `db:"plan"`
	RoutingMode       string       `db:"routing_mode"`
	ActiveOrgID       *string      `db:"active_org_id"`
	DatabaseURL       *string      `db:"database_url"`
	DatabaseAuthToken *string      `db:"database_auth_token"`
	OrgMappings       []OrgMapping `db:"org_mappings"`
	APIKeyHash        string       `db:"api_key_hash"`
	APIKeyPrefix      string       `db:"api_key_prefix"`
	BillingCustomerID *string      `db:"billing_customer_id"`
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at"`
}

type Organization struct {
	ID                 string    `db:"id"`
	Slug               string    `db:"slug"`
	Name               string    `db:"name"`
	Plan               string    `db:"plan"`
	SubscriptionStatus *string   `db:"subscription_status"`
	SubscriptionID     *string   `db:"subscription_id"`
	BillingCustomerID  *string   `db:"billing_customer_id"`
	DatabaseURL        *string   `db:"database_url"`
	DatabaseAuthToken  *string   `db:"database_auth_token"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type Membership struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// TenantMapping is the durable record routing one tenant ID to one isolated
// database. Rows are keyed by (key_hash, tenant_id); owner_scope_key stays
// stable across key rotations so billing history is not fragmented.
type TenantMapping struct {
	ID                string            `db:"id"`
	KeyHash           string            `db:"key_hash"`
	TenantID          string            `db:"tenant_id"`
	DatabaseURL       string            `db:"database_url"`
	AuthToken         string            `db:"auth_token"`
	Name              *string           `db:"name"`
	Status            string            `db:"status"`
	Source            string            `db:"source"`
	Metadata          map[string]string `db:"metadata"`
	CreatedBy         string            `db:"created_by"`
	OwnerType         string            `db:"owner_type"`
	OwnerUserID       string            `db:"owner_user_id"`
	OrgID             *string           `db:"org_id"`
	BillingCustomerID *string           `db:"billing_customer_id"`
	OwnerScopeKey     string            `db:"owner_scope_key"`
	CreatedAt         time.Time         `db:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at"`
	LastVerifiedAt    *time.Time        `db:"last_verified_at"`
}

// WorkspaceContext is the routing decision for one memory operation: which
// owner scope applies and which stored database credentials to use.
// DatabaseURL and DatabaseAuthToken may be nil, meaning "not yet
// provisioned", never an error.
type WorkspaceContext struct {
	OwnerType         string
	UserID            string
	OrgID             *string
	OrgSlug           *string
	Plan              string
	DatabaseURL       *string
	DatabaseAuthToken *string
}

// BillingContext groups everything quota enforcement and usage attribution
// need about the owner scope of an operation.
type BillingContext struct {
	OwnerType         string
	OwnerUserID       string
	OrgID             *string
	BillingCustomerID *string
	OwnerScopeKey     string
	Plan              string
}

// BillingEvent is one durable usage/meter record consumed by invoicing.
type BillingEvent struct {
	ID                string            `db:"id"`
	OwnerScopeKey     string            `db:"owner_scope_key"`
	BillingCustomerID *string           `db:"billing_customer_id"`
	EventType         string            `db:"event_type"`
	Quantity          int64             `db:"quantity"`
	Metadata          map[string]string `db:"metadata"`
	CreatedAt         time.Time         `db:"created_at"`
}
