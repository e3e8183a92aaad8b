// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/memory-tenant-service/internal/types"
)

// StorageInterface is the subset of the internal storage layer the webhook
// service needs.
type StorageInterface interface {
	GetOrganizationByBillingCustomer(ctx context.Context, customerID string) (*types.Organization, error)
	UpdateOrganizationSubscription(ctx context.Context, orgID, plan string, status, subscriptionID *string) error
}

type ServiceInterface interface {
	HandleSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error
}
