// Package quota decides whether an account is within the entitlements its
// billing plan grants: how many sites it may own, how many pageviews it may
// ingest over a trailing 30 days, and how many distinct people may hold
// seats on its sites.
//
// Evaluation is request-scoped and stateless. Each call resolves the
// account's plan, derives a Limit per resource, aggregates current usage
// from the ownership, team, and metrics stores, and compares the two.
// Nothing is cached or persisted; a concurrent mutation may or may not be
// reflected, which is fine because enforcement is re-checked before the next
// gated action and reconciled by a periodic background job.
//
// Basic usage:
//
//	catalog, _ := plan.NewInMemCatalog(
//		plan.Standard("price_growth_monthly", 50, 100_000, 10),
//	)
//	resolver := plan.NewResolver(catalog, slog.Default())
//
//	svc, err := quota.NewService(resolver, siteStore, teamStore, pageviewSource)
//	if err != nil {
//		// handle error
//	}
//
//	if err := svc.CanCreateSite(ctx, acct); errors.Is(err, quota.ErrOverLimit) {
//		// deny the action
//	}
//
// Store failures are never swallowed: there is no safe default usage value,
// so the caller decides whether to fail closed or retry.
package quota
