package usage_test

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsdeck/quotakit/svc/usage"
)

func TestNewPGStore(t *testing.T) {
	t.Parallel()

	t.Run("nil pool", func(t *testing.T) {
		t.Parallel()

		_, err := usage.NewPGStore(nil)
		assert.ErrorIs(t, err, usage.ErrNilPool)
	})
}

func TestNewRedisPageviews(t *testing.T) {
	t.Parallel()

	t.Run("nil client", func(t *testing.T) {
		t.Parallel()

		_, err := usage.NewRedisPageviews(nil)
		assert.ErrorIs(t, err, usage.ErrNilClient)
	})

	t.Run("constructs with options", func(t *testing.T) {
		t.Parallel()

		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		t.Cleanup(func() { _ = client.Close() })

		src, err := usage.NewRedisPageviews(client, usage.WithKeyPrefix("test:usage:"))
		require.NoError(t, err)
		assert.NotNil(t, src)
	})
}
