// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apierror defines the service-wide error taxonomy. Every rejection
// carries a stable machine-readable code so SDK callers can branch on cause
// without string-matching messages.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Stable error codes.
const (
	CodeValidation = "validation_error"
	CodeAuth       = "auth_error"
	CodeNotFound   = "not_found_error"
	CodeRateLimit  = "rate_limit_error"
	CodeInternal   = "internal_error"
)

// ServiceError is the canonical error returned by service-layer operations.
type ServiceError struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	// Retryable is true only for internal errors; validation, auth,
	// not-found and quota rejections are terminal for the request.
	Retryable bool `json:"retryable"`

	cause error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func Validation(message string) *ServiceError {
	return &ServiceError{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *ServiceError {
	return &ServiceError{Code: CodeAuth, Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *ServiceError {
	return &ServiceError{Code: CodeAuth, Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

func RateLimit(message string) *ServiceError {
	return &ServiceError{Code: CodeRateLimit, Status: http.StatusTooManyRequests, Message: message}
}

func Internal(message string, cause error) *ServiceError {
	return &ServiceError{Code: CodeInternal, Status: http.StatusInternalServerError, Message: message, Retryable: true, cause: cause}
}

// From normalizes any error into a ServiceError, wrapping unknown errors as
// internal.
func From(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return Internal("internal server error", err)
}

// Write renders err as the standard JSON error body.
func Write(w http.ResponseWriter, err error) {
	se := From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(se.Status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    se.Status,
		"code":      se.Code,
		"message":   se.Message,
		"retryable": se.Retryable,
	})
}
