// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package turso talks to the database-hosting platform API that backs the
// per-tenant memory databases.
package turso

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
)

// URLScheme is the connection-scheme prefix every tenant database URL must
// carry, both for provisioned and attached databases.
const URLScheme = "libsql://"

const defaultRequestTimeout = 30 * time.Second

// schemaStatements is the baseline data schema applied to every freshly
// provisioned tenant database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS memories (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		metadata TEXT,
		created_at TEXT DEFAULT (datetime('now')),
		updated_at TEXT DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_memories_created_at ON memories(created_at)`,
	`CREATE TABLE IF NOT EXISTS memory_relations (
		id TEXT PRIMARY KEY,
		source_id TEXT NOT NULL REFERENCES memories(id),
		target_id TEXT NOT NULL REFERENCES memories(id),
		relation TEXT NOT NULL
	)`,
}

var _ ClientInterface = (*Client)(nil)

type Config struct {
	APIURL   string
	APIToken string
	Org      string
	Group    string
}

type Client struct {
	config Config
	http   *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		config:  config,
		http:    &http.Client{Timeout: defaultRequestTimeout},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) CreateDatabase(ctx context.Context, name string) (*Database, error) {
	ctx, span := c.tracer.Start(ctx, "turso.Client.CreateDatabase")
	defer span.End()

	body := map[string]string{
		"name":  name,
		"group": c.config.Group,
	}

	var out struct {
		Database Database `json:"database"`
	}
	err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/organizations/%s/databases", c.config.APIURL, c.config.Org),
		c.config.APIToken, body, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	return &out.Database, nil
}

func (c *Client) CreateDatabaseToken(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "turso.Client.CreateDatabaseToken")
	defer span.End()

	var out struct {
		JWT string `json:"jwt"`
	}
	err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/organizations/%s/databases/%s/auth/tokens", c.config.APIURL, c.config.Org, name),
		c.config.APIToken, nil, &out)
	if err != nil {
		return "", fmt.Errorf("failed to create database token: %w", err)
	}

	return out.JWT, nil
}

func (c *Client) DeleteDatabase(ctx context.Context, name string) error {
	ctx, span := c.tracer.Start(ctx, "turso.Client.DeleteDatabase")
	defer span.End()

	err := c.do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/v1/organizations/%s/databases/%s", c.config.APIURL, c.config.Org, name),
		c.config.APIToken, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	return nil
}

func (c *Client) InitSchema(ctx context.Context, dbURL, authToken string) error {
	ctx, span := c.tracer.Start(ctx, "turso.Client.InitSchema")
	defer span.End()

	for _, stmt := range schemaStatements {
		if err := c.Exec(ctx, dbURL, authToken, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return nil
}

// Exec runs one statement over the database's HTTP pipeline endpoint.
func (c *Client) Exec(ctx context.Context, dbURL, authToken, stmt string) error {
	ctx, span := c.tracer.Start(ctx, "turso.Client.Exec")
	defer span.End()

	endpoint, err := pipelineEndpoint(dbURL)
	if err != nil {
		return err
	}

	body := map[string]interface{}{
		"requests": []interface{}{
			map[string]interface{}{
				"type": "execute",
				"stmt": map[string]string{"sql": stmt},
			},
			map[string]string{"type": "close"},
		},
	}

	if err := c.do(ctx, http.MethodPost, endpoint, authToken, body, nil); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}

	return nil
}

// pipelineEndpoint converts a libsql:// connection URL to the database's
// HTTPS pipeline endpoint.
func pipelineEndpoint(dbURL string) (string, error) {
	if !strings.HasPrefix(dbURL, URLScheme) {
		return "", fmt.Errorf("unexpected database URL scheme: %s", dbURL)
	}
	host := strings.TrimPrefix(dbURL, URLScheme)
	return fmt.Sprintf("https://%s/v2/pipeline", strings.TrimSuffix(host, "/")), nil
}

func (c *Client) do(ctx context.Context, method, url, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.setAvailability(0)
		return err
	}
	defer resp.Body.Close()

	c.setAvailability(1)

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "turso"}, v); err != nil {
		c.logger.Errorf("failed to set dependency availability: %v", err)
	}
}
