// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package plan collapses raw subscription state into a small closed set of
// plan tiers and exposes the static limits attached to each tier. Everything
// here is a pure function of its inputs so it stays independently testable.
package plan

import (
	"strings"
)

type Tier string

const (
	TierFree       Tier = "free"
	TierIndividual Tier = "individual"
	TierTeam       Tier = "team"
	TierGrowth     Tier = "growth"
	TierPastDue    Tier = "past_due"
)

// NoHardCap marks a tier without an admission-control cap; included-count
// overruns are metered overage, not rejections.
const NoHardCap = -1

// Limits are the admission-control and metering figures for one tier.
type Limits struct {
	// IncludedProjects is the number of tenant databases covered by the
	// base subscription price.
	IncludedProjects int
	// OverageUnitCents is the per-project monthly price beyond the
	// included count. Zero means overage is not sold for this tier.
	OverageUnitCents int64
	// HardCap rejects creation once reached. NoHardCap disables it.
	HardCap int
}

var tierLimits = map[Tier]Limits{
	TierFree:       {IncludedProjects: 1, OverageUnitCents: 0, HardCap: 1},
	TierIndividual: {IncludedProjects: 3, OverageUnitCents: 500, HardCap: NoHardCap},
	TierTeam:       {IncludedProjects: 10, OverageUnitCents: 400, HardCap: NoHardCap},
	TierGrowth:     {IncludedProjects: 25, OverageUnitCents: 300, HardCap: NoHardCap},
	// Billing problems freeze creation entirely until resolved.
	TierPastDue: {IncludedProjects: 0, OverageUnitCents: 0, HardCap: 0},
}

// LimitsFor returns the limits for a tier, falling back to the free tier
// for anything unrecognized so enforcement fails safe.
func LimitsFor(tier Tier) Limits {
	if l, ok := tierLimits[tier]; ok {
		return l
	}
	return tierLimits[TierFree]
}

// Input is the raw subscription state a tier is derived from.
type Input struct {
	// SubscriptionStatus is the organization's billing-provider status
	// ("active", "past_due", "cancelled") or empty when none exists.
	SubscriptionStatus string
	// OrgPlan is the organization's explicit plan field, possibly empty.
	OrgPlan string
	// HasSubscriptionRef reports whether an external subscription
	// reference exists even though no explicit plan is set.
	HasSubscriptionRef bool
	// UserPlan is the owning user's own plan field, used as the final
	// fallback.
	UserPlan string
}

// Normalize maps raw subscription state to a tier. Precedence is evaluated
// in order, first match wins:
//  1. past_due status dominates everything
//  2. cancelled collapses to free
//  3. active with an explicit org plan normalizes that plan string
//  4. active with only a subscription reference means the lowest paid tier
//  5. otherwise the user's own plan field, defaulting to free
func Normalize(in Input) Tier {
	switch in.SubscriptionStatus {
	case "past_due":
		return TierPastDue
	case "cancelled":
		return TierFree
	case "active":
		if in.OrgPlan != "" {
			return normalizePlanString(in.OrgPlan)
		}
		if in.HasSubscriptionRef {
			return TierIndividual
		}
	}

	if in.UserPlan != "" {
		return normalizePlanString(in.UserPlan)
	}
	return TierFree
}

// normalizePlanString folds a free-form plan string into the tier set.
// Unrecognized premium tiers map to the richest known tier rather than
// being rejected.
func normalizePlanString(p string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(p))) {
	case TierFree, "":
		return TierFree
	case TierIndividual, "pro", "starter":
		return TierIndividual
	case TierTeam:
		return TierTeam
	case TierGrowth, "scale", "business", "enterprise":
		return TierGrowth
	case TierPastDue:
		return TierPastDue
	default:
		return TierGrowth
	}
}
