// Package usage provides the production store adapters behind the quota
// engine: a Postgres-backed ownership and team store and a Redis-backed
// 30-day pageview source.
//
// Wire-up:
//
//	pool, _ := pg.Connect(ctx, pgCfg)
//	store, _ := usage.NewPGStore(pool)
//
//	client, _ := redis.Connect(ctx, redisCfg)
//	pageviews, _ := usage.NewRedisPageviews(client)
//
//	svc, _ := quota.NewService(resolver, store, store, pageviews)
//
// Both adapters are read-only; timeouts and cancellation are the caller's
// responsibility via the passed context.
package usage
