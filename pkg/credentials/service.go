// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package credentials rotates API keys without losing any tenant mapping:
// mappings are cloned forward to the new key hash before the old key is
// retired, so there is no window in which either key resolves to an empty
// workspace.
package credentials

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/canonical/memory-tenant-service/internal/apierror"
	"github.com/canonical/memory-tenant-service/internal/db"
	"github.com/canonical/memory-tenant-service/internal/logging"
	"github.com/canonical/memory-tenant-service/internal/monitoring"
	"github.com/canonical/memory-tenant-service/internal/tracing"
	"github.com/canonical/memory-tenant-service/pkg/authentication"
)

const (
	// keyEntropyBytes is the random payload size of a generated API key.
	keyEntropyBytes = 32

	cleanupTimeout = 15 * time.Second
)

// RotationResult is returned exactly once; the raw key is never stored and
// cannot be retrieved again.
type RotationResult struct {
	APIKey       string
	KeyPrefix    string
	MappingCount int
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	keyPrefix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	keyPrefix string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		keyPrefix: keyPrefix,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Rotate replaces the caller's API key. The order is deliberate: clone the
// mappings to the new hash first, swap the user record second, clean up the
// old rows last. A failure before the swap leaves the old key fully
// functional; a failure after the swap leaves at worst duplicate rows,
// never missing ones.
func (s *Service) Rotate(ctx context.Context, identity *authentication.Identity) (*RotationResult, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.Service.Rotate")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, apierror.Internal("failed to load user", err)
	}
	oldHash := user.APIKeyHash

	rawKey, err := s.generateKey()
	if err != nil {
		return nil, apierror.Internal("failed to generate api key", err)
	}
	newHash := authentication.HashAPIKey(rawKey)
	prefix := rawKey[:len(s.keyPrefix)+8]

	cloned := 0
	if oldHash != "" {
		cloned, err = s.storage.CloneTenantMappings(ctx, oldHash, newHash)
		if err != nil {
			// The old key is still intact; abort without touching the
			// user record.
			return nil, apierror.Internal("failed to carry tenant mappings to the new key", err)
		}
	}

	if err := s.storage.UpdateUserAPIKey(ctx, user.ID, newHash, prefix); err != nil {
		return nil, apierror.Internal("failed to activate the new api key", err)
	}

	s.logger.Security().KeyRotated(user.ID)

	// Old rows are redundant once the swap is durable. Cleanup is
	// best-effort on a detached context and must bypass the request
	// transaction: a failed DELETE inside it would roll back the clone and
	// the swap after the new key was already returned. Leftovers are
	// unreachable because nothing resolves the old hash anymore.
	if oldHash != "" {
		cctx, cancel := context.WithTimeout(db.WithoutTransaction(context.WithoutCancel(ctx)), cleanupTimeout)
		defer cancel()
		if _, err := s.storage.DeleteTenantMappingsByKeyHash(cctx, oldHash); err != nil {
			s.logger.Warnf("failed to remove mappings of retired key for user %s: %v", user.ID, err)
		}
	}

	return &RotationResult{
		APIKey:       rawKey,
		KeyPrefix:    prefix,
		MappingCount: cloned,
	}, nil
}

func (s *Service) generateKey() (string, error) {
	buf := make([]byte, keyEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	return s.keyPrefix + hex.EncodeToString(buf), nil
}
