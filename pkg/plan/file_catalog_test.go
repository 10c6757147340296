package plan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsdeck/quotakit/pkg/plan"
)

func TestNewFileCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads a plan table", func(t *testing.T) {
		t.Parallel()

		path := writePlanTable(t, `
plans:
  - id: price_growth_monthly
    kind: standard
    site_limit: 50
    monthly_pageview_limit: 100000
    team_member_limit: 10
  - id: price_enterprise_acme
    kind: enterprise
    monthly_pageview_limit: 10000000
  - id: plan_free_10k
    kind: free_10k
`)

		catalog, err := plan.NewFileCatalog(path)
		require.NoError(t, err)

		p, err := catalog.Lookup(context.Background(), "price_growth_monthly")
		require.NoError(t, err)
		assert.Equal(t, plan.KindStandard, p.Kind)
		assert.Equal(t, int64(100_000), *p.MonthlyPageviewLimit)

		ent, err := catalog.Lookup(context.Background(), "price_enterprise_acme")
		require.NoError(t, err)
		assert.Nil(t, ent.SiteLimit)
		assert.Equal(t, int64(10_000_000), *ent.MonthlyPageviewLimit)

		free, err := catalog.Lookup(context.Background(), "plan_free_10k")
		require.NoError(t, err)
		assert.Equal(t, plan.KindFree10k, free.Kind)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewFileCatalog(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, plan.ErrFailedToLoadCatalog)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writePlanTable(t, "plans: [not: closed")

		_, err := plan.NewFileCatalog(path)
		assert.ErrorIs(t, err, plan.ErrFailedToLoadCatalog)
	})

	t.Run("invalid plan entry", func(t *testing.T) {
		t.Parallel()

		path := writePlanTable(t, `
plans:
  - id: price_broken
    kind: standard
    site_limit: 50
`)

		_, err := plan.NewFileCatalog(path)
		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})
}

func writePlanTable(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "plans.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
