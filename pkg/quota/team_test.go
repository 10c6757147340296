package quota_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/statsdeck/quotakit/pkg/quota"
)

func TestTeamMemberCount(t *testing.T) {
	t.Parallel()

	t.Run("empty inputs", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, quota.TeamMemberCount("owner@x.com", nil, nil))
	})

	t.Run("memberships and invites union", func(t *testing.T) {
		t.Parallel()

		n := quota.TeamMemberCount("owner@x.com",
			[]string{"a@x.com", "b@x.com"},
			[]string{"c@x.com"},
		)
		assert.Equal(t, int64(3), n)
	})

	t.Run("a person in both sources counts once", func(t *testing.T) {
		t.Parallel()

		n := quota.TeamMemberCount("owner@x.com",
			[]string{"a@x.com"},
			[]string{"a@x.com"},
		)
		assert.Equal(t, int64(1), n)
	})

	t.Run("owner never counts against their own limit", func(t *testing.T) {
		t.Parallel()

		n := quota.TeamMemberCount("owner@x.com",
			[]string{"owner@x.com", "a@x.com"},
			[]string{"owner@x.com"},
		)
		assert.Equal(t, int64(1), n)
	})

	t.Run("invite on one site, membership on another", func(t *testing.T) {
		t.Parallel()

		// Owner has sites S1 and S2: S1 holds a pending invitation for
		// a@x.com, S2 holds a membership for a@x.com plus the owner's own
		// membership. One distinct person.
		n := quota.TeamMemberCount("owner@x.com",
			[]string{"a@x.com", "owner@x.com"},
			[]string{"a@x.com"},
		)
		assert.Equal(t, int64(1), n)
	})

	t.Run("duplicates within one source collapse", func(t *testing.T) {
		t.Parallel()

		n := quota.TeamMemberCount("owner@x.com",
			[]string{"a@x.com", "a@x.com", "a@x.com"},
			nil,
		)
		assert.Equal(t, int64(1), n)
	})
}
