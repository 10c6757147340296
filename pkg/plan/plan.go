package plan

// Kind discriminates the plan variants. Every limit derivation dispatches on
// it exhaustively, so adding a Kind requires touching each switch.
type Kind string

const (
	// KindEnterprise is a negotiated contract. Entitlements are unlimited
	// unless the catalog stores an explicit override.
	KindEnterprise Kind = "enterprise"

	// KindStandard is a self-service paid tier with explicit numeric limits.
	KindStandard Kind = "standard"

	// KindFree10k is the legacy free tier: a fixed 10k monthly pageview
	// allowance with conventional site and team caps.
	KindFree10k Kind = "free_10k"

	// KindNone means the account has no subscription and runs on trial
	// defaults.
	KindNone Kind = "none"

	// KindUnknown is the fallback for subscription references the catalog
	// cannot resolve. It prices like a trial so a catalog gap never blocks
	// an account outright.
	KindUnknown Kind = "unknown"
)

// Plan is a catalog-level description of the entitlements attached to a
// subscription tier. The limit fields are the values as stored in the
// catalog; nil means the catalog left the field unset, which for enterprise
// plans means unlimited. Interpretation of stored values against trial
// defaults and grandfathering belongs to the quota package.
type Plan struct {
	Kind Kind
	ID   string // provider's price ID (e.g. price_growth_monthly); empty for none/unknown

	SiteLimit            *int64
	MonthlyPageviewLimit *int64
	TeamMemberLimit      *int64
}

// Enterprise returns an enterprise plan with no stored overrides.
func Enterprise(id string) Plan {
	return Plan{Kind: KindEnterprise, ID: id}
}

// Standard returns a standard plan with the given stored limits.
func Standard(id string, sites, pageviews, teamMembers int64) Plan {
	return Plan{
		Kind:                 KindStandard,
		ID:                   id,
		SiteLimit:            &sites,
		MonthlyPageviewLimit: &pageviews,
		TeamMemberLimit:      &teamMembers,
	}
}

// Free10k returns the legacy free tier sentinel. It carries no stored
// fields; its caps are fixed constants applied by the quota package.
func Free10k(id string) Plan {
	return Plan{Kind: KindFree10k, ID: id}
}

// None returns the plan applied to accounts without a subscription.
func None() Plan {
	return Plan{Kind: KindNone}
}

// Unknown returns the fallback plan for an unresolvable subscription
// reference. The reference is kept so callers can surface it.
func Unknown(ref string) Plan {
	return Plan{Kind: KindUnknown, ID: ref}
}

// IsUnknown reports whether the plan is the unresolvable-reference fallback.
func (p Plan) IsUnknown() bool {
	return p.Kind == KindUnknown
}

// Validate checks that a catalog entry is well formed. Standard plans must
// carry all three limits, and no stored limit may be negative.
func (p Plan) Validate() error {
	switch p.Kind {
	case KindEnterprise, KindFree10k:
		// stored fields optional
	case KindStandard:
		if p.SiteLimit == nil || p.MonthlyPageviewLimit == nil || p.TeamMemberLimit == nil {
			return ErrInvalidPlanConfiguration
		}
	case KindNone, KindUnknown:
		// never stored in a catalog
		return ErrInvalidPlanConfiguration
	default:
		return ErrInvalidPlanConfiguration
	}

	for _, v := range []*int64{p.SiteLimit, p.MonthlyPageviewLimit, p.TeamMemberLimit} {
		if v != nil && *v < 0 {
			return ErrInvalidPlanConfiguration
		}
	}
	return nil
}
