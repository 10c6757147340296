// Package plan models subscription tiers as an exhaustive tagged union and
// resolves opaque subscription references against a plan catalog.
//
// The five variants (enterprise, standard, free_10k, none, unknown) cover
// every state an account can be in: negotiated contracts, self-service paid
// tiers, the legacy free tier, trial accounts without a subscription, and
// references the catalog no longer knows. Resolution never fails; unknown
// references fall back to trial-equivalent pricing and are reported through
// the resolver's logger so operators can repair the catalog.
//
// Basic usage:
//
//	catalog, err := plan.NewFileCatalog("plans.yml")
//	if err != nil {
//		// handle error
//	}
//
//	resolver := plan.NewResolver(catalog, slog.Default())
//	p := resolver.Resolve(ctx, account.SubscriptionPlanID)
//
// The quota package turns a resolved Plan into concrete limits.
package plan
