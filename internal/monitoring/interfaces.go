// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	// SetResponseTimeMetric records one request duration in seconds,
	// labeled with route, method and status.
	SetResponseTimeMetric(map[string]string, float64) error
	// SetDependencyAvailability marks an external dependency up (1) or
	// down (0).
	SetDependencyAvailability(map[string]string, float64) error
}
