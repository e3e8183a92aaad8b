// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/memory-tenant-service/internal/logging"
)

// TransactionMiddleware wraps mutating requests in a lazily started database
// transaction: committed when the handler finishes below status 400, rolled
// back otherwise. Read-only methods bypass the transaction entirely.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				capture := &statusCapture{ResponseWriter: w, status: http.StatusOK}

				next.ServeHTTP(capture, r.WithContext(txCtx))

				if capture.status >= 400 {
					return fmt.Errorf("request failed with status %d", capture.status)
				}
				return nil
			})
			if err != nil {
				// The handler already wrote the error response; this only
				// reports commit failures.
				logger.Debugf("transaction not committed: %v", err)
			}
		})
	}
}

type statusCapture struct {
	http.ResponseWriter
	status int
}

func (c *statusCapture) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}
