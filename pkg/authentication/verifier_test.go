// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"testing"
)

func TestHasScope(t *testing.T) {
	v := &JWTVerifier{requiredScope: "memory:api"}

	testCases := []struct {
		name     string
		scope    string
		scopes   []string
		expected bool
	}{
		{name: "space separated scope claim", scope: "openid memory:api", expected: true},
		{name: "scp array claim", scopes: []string{"memory:api"}, expected: true},
		{name: "scope missing", scope: "openid profile", expected: false},
		{name: "no scopes at all", expected: false},
		{name: "partial match does not count", scope: "memory:apikeys", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.hasScope(tc.scope, tc.scopes); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
