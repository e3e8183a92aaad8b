// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"testing"

	"github.com/canonical/memory-tenant-service/internal/logging"
)

func TestWithoutTransactionDetachesLazyTx(t *testing.T) {
	lt := &lazyTx{logger: logging.NewNoopLogger()}
	ctx := contextWithLazyTx(context.Background(), lt)

	if lazyTxFromContext(ctx) != lt {
		t.Fatal("expected the transaction holder on the request context")
	}

	detached := WithoutTransaction(ctx)
	if got := lazyTxFromContext(detached); got != nil {
		t.Error("expected no transaction holder on the detached context")
	}

	// The original context is untouched; only the derived one bypasses.
	if lazyTxFromContext(ctx) != lt {
		t.Error("expected the request context to keep its transaction holder")
	}
}

func TestWithoutTransactionKeepsOtherValues(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "request-id")

	detached := WithoutTransaction(contextWithLazyTx(ctx, &lazyTx{}))
	if detached.Value(key{}) != "request-id" {
		t.Error("expected unrelated context values to survive")
	}
}
