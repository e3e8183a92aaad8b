// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks ingests billing provider callbacks and keeps the local
// organization subscription state in sync with the provider's.
package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/plan"
	"github.com/canonical/memory-tenant-service/internal/storage"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleSubscriptionEvent applies one subscription change. Events for
// customers without a matching organization are acknowledged and dropped so
// the provider does not retry them forever.
func (s *Service) HandleSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleSubscriptionEvent")
	defer span.End()

	if event.Data.CustomerID == "" {
		return fmt.Errorf("event has no customer id")
	}

	org, err := s.storage.GetOrganizationByBillingCustomer(ctx, event.Data.CustomerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("subscription event for unknown customer %s dropped", event.Data.CustomerID)
			return nil
		}
		return fmt.Errorf("failed to look up organization: %w", err)
	}

	status, subscriptionID, tier := s.translate(event)

	if err := s.storage.UpdateOrganizationSubscription(ctx, org.ID, string(tier), status, subscriptionID); err != nil {
		return fmt.Errorf("failed to update organization subscription: %w", err)
	}

	s.logger.Infof("organization %s moved to plan %s (subscription status %v)", org.ID, tier, event.Data.Status)
	return nil
}

// translate maps a provider event to the stored plan and subscription
// fields. Deletions clear the subscription reference and fall back to the
// free tier; created/updated events run through plan normalization so a
// delinquent subscription lands on past_due regardless of its labeled plan.
func (s *Service) translate(event *SubscriptionEvent) (status, subscriptionID *string, tier plan.Tier) {
	if event.Type == EventSubscriptionDeleted {
		st := types.SubscriptionCancelled
		return &st, nil, plan.TierFree
	}

	st := event.Data.Status
	sid := event.Data.SubscriptionID

	tier = plan.Normalize(plan.Input{
		SubscriptionStatus: st,
		OrgPlan:            event.Data.Plan,
		HasSubscriptionRef: sid != "",
	})

	return &st, &sid, tier
}
