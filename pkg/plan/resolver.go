package plan

import (
	"context"
	"log/slog"
)

// Resolver maps an account's subscription reference to a Plan. Resolution is
// total: an empty reference yields the no-subscription plan and any catalog
// miss or failure yields the unknown-plan fallback instead of an error, so a
// stale price ID or a flaky catalog can never break limit evaluation.
type Resolver struct {
	catalog Catalog
	log     *slog.Logger
}

// NewResolver returns a Resolver over the given catalog. A nil logger falls
// back to slog.Default().
func NewResolver(catalog Catalog, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{catalog: catalog, log: log}
}

// Resolve returns the plan for a subscription reference. An unresolvable
// reference emits exactly one warning event carrying the opaque reference for
// operator follow-up; callers see only the unknown-plan fallback.
func (r *Resolver) Resolve(ctx context.Context, ref string) Plan {
	if ref == "" {
		return None()
	}

	p, err := r.catalog.Lookup(ctx, ref)
	if err != nil {
		r.log.LogAttrs(ctx, slog.LevelWarn, "unknown subscription plan",
			slog.String("plan_id", ref),
			slog.Any("error", err),
		)
		return Unknown(ref)
	}
	return p
}
