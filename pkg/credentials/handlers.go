// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
)

type rotateResponse struct {
	APIKey       string `json:"api_key"`
	KeyPrefix    string `json:"key_prefix"`
	MappingCount int    `json:"mapping_count"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/keys/rotate", a.rotate)
}

func (a *API) rotate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "credentials.API.rotate")
	defer span.End()

	identity, ok := authentication.GetIdentity(ctx)
	if !ok {
		apierror.Write(w, apierror.Unauthorized("unauthenticated"))
		return
	}

	result, err := a.service.Rotate(ctx, identity)
	if err != nil {
		a.logger.Errorf("key rotation failed for user %s: %v", identity.UserID, err)
		apierror.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(rotateResponse{
		APIKey:       result.APIKey,
		KeyPrefix:    result.KeyPrefix,
		MappingCount: result.MappingCount,
	})
}
