// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// Subscription event types accepted on the billing webhook.
const (
	EventSubscriptionCreated = "subscription.created"
	EventSubscriptionUpdated = "subscription.updated"
	EventSubscriptionDeleted = "subscription.deleted"
)

// SubscriptionEvent is the payload delivered by the billing provider when a
// customer's subscription changes.
type SubscriptionEvent struct {
	Type string           `json:"type"`
	Data SubscriptionData `json:"data"`
}

type SubscriptionData struct {
	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`
	Status         string `json:"status"`
	Plan           string `json:"plan"`
}
