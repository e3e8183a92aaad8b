// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

type ClientInterface interface {
	CheckSession(ctx context.Context, cookie string) (string, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CheckSession validates a session cookie against Kratos and returns the
// identity ID it belongs to.
func (c *Client) CheckSession(ctx context.Context, cookie string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CheckSession")
	defer span.End()

	session, r, err := c.client.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("session is not active")
		}
		return "", fmt.Errorf("failed to check session: %w", err)
	}

	if session.Identity == nil || !session.GetActive() {
		return "", fmt.Errorf("session is not active")
	}

	return session.Identity.Id, nil
}
