package plan

import (
	"context"
	"sync"
)

// Catalog resolves an opaque subscription reference (the billing provider's
// price ID) to a stored plan record. Implementations return ErrPlanNotFound
// for references they do not know; any other error is treated the same way
// by the Resolver.
type Catalog interface {
	Lookup(ctx context.Context, ref string) (Plan, error)
}

type inMemCatalog struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

// NewInMemCatalog returns a Catalog backed by the given plans, keyed by plan
// ID. Every plan is validated up front so a misconfigured tier fails at
// wire-up rather than mid-evaluation.
func NewInMemCatalog(plans ...Plan) (Catalog, error) {
	byID := make(map[string]Plan, len(plans))
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID] = clonePlan(p)
	}
	return &inMemCatalog{plans: byID}, nil
}

func (c *inMemCatalog) Lookup(_ context.Context, ref string) (Plan, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.plans[ref]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return clonePlan(p), nil
}

// clonePlan deep-copies the stored limit pointers so callers cannot mutate
// catalog state through a returned plan.
func clonePlan(p Plan) Plan {
	out := Plan{Kind: p.Kind, ID: p.ID}
	if p.SiteLimit != nil {
		v := *p.SiteLimit
		out.SiteLimit = &v
	}
	if p.MonthlyPageviewLimit != nil {
		v := *p.MonthlyPageviewLimit
		out.MonthlyPageviewLimit = &v
	}
	if p.TeamMemberLimit != nil {
		v := *p.TeamMemberLimit
		out.TeamMemberLimit = &v
	}
	return out
}
