package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/statsdeck/quotakit/pkg/quota"
)

// defaultKeyPrefix matches the key layout the ingestion pipeline maintains:
// one hash per account holding per-category counts over the trailing 30 days.
const defaultKeyPrefix = "usage:30d:"

// RedisPageviews implements quota.PageviewSource over the rolling 30-day
// usage hashes written by the ingestion pipeline.
type RedisPageviews struct {
	client    redis.UniversalClient
	keyPrefix string
}

// PageviewsOption configures a RedisPageviews source.
type PageviewsOption func(*RedisPageviews)

// WithKeyPrefix overrides the hash key prefix.
func WithKeyPrefix(prefix string) PageviewsOption {
	return func(p *RedisPageviews) {
		p.keyPrefix = prefix
	}
}

// NewRedisPageviews returns a pageview source over the given Redis client.
func NewRedisPageviews(client redis.UniversalClient, opts ...PageviewsOption) (*RedisPageviews, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	p := &RedisPageviews{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// UsageBreakdown returns the per-category counts for an account. A missing
// hash means no recorded traffic and yields an empty breakdown, not an
// error; a non-numeric field is a data bug and fails loudly.
func (p *RedisPageviews) UsageBreakdown(ctx context.Context, accountID uuid.UUID) (map[string]int64, error) {
	raw, err := p.client.HGetAll(ctx, p.keyPrefix+accountID.String()).Result()
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	breakdown := make(map[string]int64, len(raw))
	for category, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, fmt.Errorf("category %q: %w", category, err))
		}
		breakdown[category] = n
	}
	return breakdown, nil
}

var _ quota.PageviewSource = (*RedisPageviews)(nil)
