package quota_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsdeck/quotakit/pkg/plan"
	"github.com/statsdeck/quotakit/pkg/quota"
)

var (
	afterCutoff  = quota.SiteLimitCutoff.AddDate(1, 0, 0)
	beforeCutoff = quota.SiteLimitCutoff.AddDate(-1, 0, 0)
)

func TestSiteLimit(t *testing.T) {
	t.Parallel()

	t.Run("self-hosted is always unlimited", func(t *testing.T) {
		t.Parallel()

		l := quota.SiteLimit(plan.Free10k("plan_free_10k"), afterCutoff, true)
		assert.True(t, l.IsUnlimited())
	})

	t.Run("signup before the cutoff is unlimited regardless of plan", func(t *testing.T) {
		t.Parallel()

		for _, p := range []plan.Plan{
			plan.Standard("price_growth", 5, 100_000, 10),
			plan.Free10k("plan_free_10k"),
			plan.None(),
			plan.Unknown("price_deleted"),
		} {
			l := quota.SiteLimit(p, beforeCutoff, false)
			assert.True(t, l.IsUnlimited(), "plan kind %s", p.Kind)
		}
	})

	t.Run("signup exactly at the cutoff is not grandfathered", func(t *testing.T) {
		t.Parallel()

		l := quota.SiteLimit(plan.None(), quota.SiteLimitCutoff, false)
		assert.False(t, l.IsUnlimited())
	})

	t.Run("enterprise is unlimited unless overridden", func(t *testing.T) {
		t.Parallel()

		assert.True(t, quota.SiteLimit(plan.Enterprise("price_ent"), afterCutoff, false).IsUnlimited())

		override := plan.Enterprise("price_ent")
		siteCap := int64(200)
		override.SiteLimit = &siteCap

		n, ok := quota.SiteLimit(override, afterCutoff, false).Value()
		require.True(t, ok)
		assert.Equal(t, int64(200), n)
	})

	t.Run("standard uses the stored cap", func(t *testing.T) {
		t.Parallel()

		n, ok := quota.SiteLimit(plan.Standard("price_growth", 30, 100_000, 10), afterCutoff, false).Value()
		require.True(t, ok)
		assert.Equal(t, int64(30), n)
	})

	t.Run("free tier and trial caps", func(t *testing.T) {
		t.Parallel()

		n, ok := quota.SiteLimit(plan.Free10k("plan_free_10k"), afterCutoff, false).Value()
		require.True(t, ok)
		assert.Equal(t, quota.FreeTierSiteCap, n)

		n, ok = quota.SiteLimit(plan.None(), afterCutoff, false).Value()
		require.True(t, ok)
		assert.Equal(t, quota.TrialSiteCap, n)

		n, ok = quota.SiteLimit(plan.Unknown("price_deleted"), afterCutoff, false).Value()
		require.True(t, ok)
		assert.Equal(t, quota.TrialSiteCap, n)
	})
}

func TestMonthlyPageviewLimit(t *testing.T) {
	t.Parallel()

	t.Run("paid plans use the stored value as-is", func(t *testing.T) {
		t.Parallel()

		n, ok := quota.MonthlyPageviewLimit(plan.Standard("price_growth", 30, 100_000, 10)).Value()
		require.True(t, ok)
		assert.Equal(t, int64(100_000), n)

		// An enterprise plan with no stored allowance is unlimited; the
		// calculator does not reinterpret it.
		assert.True(t, quota.MonthlyPageviewLimit(plan.Enterprise("price_ent")).IsUnlimited())
	})

	t.Run("free tier has the fixed 10k cap", func(t *testing.T) {
		t.Parallel()

		n, ok := quota.MonthlyPageviewLimit(plan.Free10k("plan_free_10k")).Value()
		require.True(t, ok)
		assert.Equal(t, quota.FreeTierPageviewCap, n)
	})

	t.Run("trial and unknown are unlimited", func(t *testing.T) {
		t.Parallel()

		assert.True(t, quota.MonthlyPageviewLimit(plan.None()).IsUnlimited())
		assert.True(t, quota.MonthlyPageviewLimit(plan.Unknown("price_deleted")).IsUnlimited())
	})

	t.Run("no grandfathering for pageviews", func(t *testing.T) {
		t.Parallel()

		// The derivation takes no signup date at all; the free tier cap
		// applies to grandfathered accounts too.
		n, ok := quota.MonthlyPageviewLimit(plan.Free10k("plan_free_10k")).Value()
		require.True(t, ok)
		assert.Equal(t, quota.FreeTierPageviewCap, n)
	})
}

func TestTeamMemberLimit(t *testing.T) {
	t.Parallel()

	t.Run("per kind", func(t *testing.T) {
		t.Parallel()

		assert.True(t, quota.TeamMemberLimit(plan.Enterprise("price_ent")).IsUnlimited())
		assert.True(t, quota.TeamMemberLimit(plan.Free10k("plan_free_10k")).IsUnlimited())

		n, ok := quota.TeamMemberLimit(plan.Standard("price_growth", 30, 100_000, 10)).Value()
		require.True(t, ok)
		assert.Equal(t, int64(10), n)

		n, ok = quota.TeamMemberLimit(plan.None()).Value()
		require.True(t, ok)
		assert.Equal(t, quota.TrialTeamMemberCap, n)

		n, ok = quota.TeamMemberLimit(plan.Unknown("price_deleted")).Value()
		require.True(t, ok)
		assert.Equal(t, quota.TrialTeamMemberCap, n)
	})
}

func TestComputeLimits(t *testing.T) {
	t.Parallel()

	t.Run("enterprise without overrides is unlimited across the board", func(t *testing.T) {
		t.Parallel()

		limits := quota.ComputeLimits(plan.Enterprise("price_ent"), afterCutoff, false)

		assert.True(t, limits.Sites.IsUnlimited())
		assert.True(t, limits.MonthlyPageviews.IsUnlimited())
		assert.True(t, limits.TeamMembers.IsUnlimited())
	})

	t.Run("grandfathered trial account on a hosted deployment", func(t *testing.T) {
		t.Parallel()

		// Unlimited sites comes from grandfathering alone, not the trial
		// default.
		limits := quota.ComputeLimits(plan.None(), beforeCutoff, false)

		assert.True(t, limits.Sites.IsUnlimited())
		assert.True(t, limits.MonthlyPageviews.IsUnlimited())

		n, ok := limits.TeamMembers.Value()
		require.True(t, ok)
		assert.Equal(t, quota.TrialTeamMemberCap, n)
	})

	t.Run("grandfathering touches only the site limit", func(t *testing.T) {
		t.Parallel()

		limits := quota.ComputeLimits(plan.Standard("price_growth", 30, 100_000, 10), beforeCutoff, false)

		assert.True(t, limits.Sites.IsUnlimited())
		assert.False(t, limits.MonthlyPageviews.IsUnlimited())
		assert.False(t, limits.TeamMembers.IsUnlimited())
	})
}
