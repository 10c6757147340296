package quota

import (
	"time"

	"github.com/statsdeck/quotakit/pkg/plan"
)

// Fixed-tier caps. The free_10k tier predates the current catalog and its
// caps were never stored per-plan; trial defaults apply whenever no plan can
// be resolved.
const (
	FreeTierSiteCap     int64 = 50
	FreeTierPageviewCap int64 = 10_000

	TrialSiteCap       int64 = 50
	TrialTeamMemberCap int64 = 3
)

// SiteLimitCutoff is the moment site quotas were introduced. Accounts
// created strictly before it keep unlimited sites regardless of plan.
var SiteLimitCutoff = time.Date(2021, time.May, 5, 0, 0, 0, 0, time.UTC)

// Limits is the full entitlement set for one account, computed fresh per
// evaluation and never persisted.
type Limits struct {
	Sites            Limit
	MonthlyPageviews Limit
	TeamMembers      Limit
}

// SiteLimit derives how many sites an account may own. Self-hosted
// deployments and grandfathered accounts short-circuit to unlimited before
// the plan is consulted; this is the only entitlement grandfathering
// applies to.
func SiteLimit(p plan.Plan, signedUpAt time.Time, selfHosted bool) Limit {
	if selfHosted {
		return Unlimited()
	}
	if signedUpAt.Before(SiteLimitCutoff) {
		return Unlimited()
	}

	switch p.Kind {
	case plan.KindEnterprise, plan.KindStandard:
		return storedOr(p.SiteLimit, Unlimited())
	case plan.KindFree10k:
		return Numeric(FreeTierSiteCap)
	case plan.KindNone, plan.KindUnknown:
		return Numeric(TrialSiteCap)
	default:
		return Numeric(TrialSiteCap)
	}
}

// MonthlyPageviewLimit derives the 30-day pageview allowance. Paid plans use
// the stored value as-is: an enterprise plan with no stored allowance is
// unlimited, and the calculator never reinterprets a stored value.
func MonthlyPageviewLimit(p plan.Plan) Limit {
	switch p.Kind {
	case plan.KindEnterprise, plan.KindStandard:
		return storedOr(p.MonthlyPageviewLimit, Unlimited())
	case plan.KindFree10k:
		return Numeric(FreeTierPageviewCap)
	case plan.KindNone, plan.KindUnknown:
		return Unlimited()
	default:
		return Unlimited()
	}
}

// TeamMemberLimit derives how many distinct people may hold seats across the
// account's sites, not counting the owner.
func TeamMemberLimit(p plan.Plan) Limit {
	switch p.Kind {
	case plan.KindEnterprise, plan.KindStandard:
		return storedOr(p.TeamMemberLimit, Unlimited())
	case plan.KindFree10k:
		return Unlimited()
	case plan.KindNone, plan.KindUnknown:
		return Numeric(TrialTeamMemberCap)
	default:
		return Numeric(TrialTeamMemberCap)
	}
}

// ComputeLimits derives all three entitlements. Pure: the deployment mode is
// an explicit parameter, never read from process state.
func ComputeLimits(p plan.Plan, signedUpAt time.Time, selfHosted bool) Limits {
	return Limits{
		Sites:            SiteLimit(p, signedUpAt, selfHosted),
		MonthlyPageviews: MonthlyPageviewLimit(p),
		TeamMembers:      TeamMemberLimit(p),
	}
}

// storedOr maps a catalog-stored field to a Limit: nil means the catalog
// left it unset and the fallback applies.
func storedOr(v *int64, fallback Limit) Limit {
	if v == nil {
		return fallback
	}
	return Numeric(*v)
}
