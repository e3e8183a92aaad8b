// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/memory-tenant-service/internal/types"
)

// CreateBillingEvent records one durable usage/meter event. Rows are the
// attribution source for downstream invoicing and are never deleted.
func (s *Storage) CreateBillingEvent(ctx context.Context, e *types.BillingEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBillingEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate event ID: %w", err)
	}

	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode event metadata: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("billing_events").
		Columns("id", "owner_scope_key", "billing_customer_id", "event_type", "quantity", "metadata").
		Values(id.String(), e.OwnerScopeKey, e.BillingCustomerID, e.EventType, e.Quantity, metadata).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to create billing event: %w", err)
	}

	return nil
}
