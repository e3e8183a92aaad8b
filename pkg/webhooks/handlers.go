// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

// SecretHeader carries the shared webhook secret configured at the billing
// provider.
const SecretHeader = "X-Webhook-Secret"

type API struct {
	service ServiceInterface
	secret  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	secret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		secret:  secret,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/billing", a.subscription)
}

func (a *API) subscription(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.subscription")
	defer span.End()

	if !a.authorized(r) {
		a.logger.Security().AuthnFailure("billing-webhook", "shared_secret")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var event SubscriptionEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.HandleSubscriptionEvent(ctx, &event); err != nil {
		a.logger.Errorf("failed to handle subscription event: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) authorized(r *http.Request) bool {
	if a.secret == "" {
		return false
	}
	provided := r.Header.Get(SecretHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(a.secret)) == 1
}
