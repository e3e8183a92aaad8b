// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package databases

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/internal/types"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
	"github.com/canonical/memory-tenant-service/pkg/billing"
)

type provisionRequestBody struct {
	TenantID    string            `json:"tenant_id" validate:"required"`
	Mode        string            `json:"mode" validate:"omitempty,oneof=provision attach"`
	Name        *string           `json:"name" validate:"omitempty,max=128"`
	DatabaseURL string            `json:"database_url" validate:"required_if=Mode attach"`
	AuthToken   string            `json:"auth_token" validate:"required_if=Mode attach"`
	Metadata    map[string]string `json:"metadata"`
}

type databaseResponse struct {
	TenantID       string            `json:"tenant_id"`
	DatabaseURL    string            `json:"database_url"`
	Name           *string           `json:"name,omitempty"`
	Status         string            `json:"status"`
	Source         string            `json:"source"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	LastVerifiedAt *time.Time        `json:"last_verified_at,omitempty"`
}

type listResponse struct {
	Databases []databaseResponse `json:"databases"`
	Billing   *billing.Summary   `json:"billing"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

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
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/databases", a.list)
	mux.Post("/api/v0/databases", a.provision)
	mux.Delete("/api/v0/databases/{tenantID}", a.disable)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "databases.API.list")
	defer span.End()

	identity, ok := authentication.GetIdentity(ctx)
	if !ok {
		apierror.Write(w, apierror.Unauthorized("unauthenticated"))
		return
	}

	mappings, summary, err := a.service.List(ctx, identity)
	if err != nil {
		a.logger.Errorf("failed to list databases: %v", err)
		apierror.Write(w, err)
		return
	}

	resp := listResponse{
		Databases: make([]databaseResponse, 0, len(mappings)),
		Billing:   summary,
	}
	for _, m := range mappings {
		resp.Databases = append(resp.Databases, toResponse(m))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) provision(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "databases.API.provision")
	defer span.End()

	identity, ok := authentication.GetIdentity(ctx)
	if !ok {
		apierror.Write(w, apierror.Unauthorized("unauthenticated"))
		return
	}

	var body provisionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierror.Write(w, apierror.Validation("invalid request body"))
		return
	}
	if body.Mode == "" {
		body.Mode = ModeProvision
	}
	if err := a.validate.StructCtx(ctx, body); err != nil {
		apierror.Write(w, apierror.Validation(err.Error()))
		return
	}

	mapping, err := a.service.Provision(ctx, identity, &ProvisionRequest{
		TenantID:    body.TenantID,
		Mode:        body.Mode,
		Name:        body.Name,
		DatabaseURL: body.DatabaseURL,
		AuthToken:   body.AuthToken,
		Metadata:    body.Metadata,
	})
	if err != nil {
		a.logger.Errorf("failed to provision database for tenant %s: %v", body.TenantID, err)
		apierror.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(mapping))
}

func (a *API) disable(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "databases.API.disable")
	defer span.End()

	identity, ok := authentication.GetIdentity(ctx)
	if !ok {
		apierror.Write(w, apierror.Unauthorized("unauthenticated"))
		return
	}

	tenantID := chi.URLParam(r, "tenantID")
	if err := a.service.Disable(ctx, identity, tenantID); err != nil {
		a.logger.Errorf("failed to disable database for tenant %s: %v", tenantID, err)
		apierror.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"tenant_id": tenantID, "status": types.MappingStatusDisabled})
}

// toResponse maps a stored row to the public shape. Auth tokens and key
// hashes never leave the service.
func toResponse(m *types.TenantMapping) databaseResponse {
	return databaseResponse{
		TenantID:       m.TenantID,
		DatabaseURL:    m.DatabaseURL,
		Name:           m.Name,
		Status:         m.Status,
		Source:         m.Source,
		Metadata:       m.Metadata,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		LastVerifiedAt: m.LastVerifiedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
