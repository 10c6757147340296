package quota

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/statsdeck/quotakit/pkg/plan"
)

// Account is the read-only view of a tenant this engine evaluates. Owned by
// the accounts system; the engine never mutates it.
type Account struct {
	ID                 uuid.UUID
	Email              string
	CreatedAt          time.Time
	SubscriptionPlanID string // provider price ID; empty means no subscription
}

// Validate rejects accounts that cannot be evaluated. Treated as a
// programming error at the boundary rather than something to sanitize.
func (a Account) Validate() error {
	if a.ID == uuid.Nil || a.Email == "" {
		return ErrInvalidAccount
	}
	return nil
}

// Usage is the current consumption of each limited resource, computed fresh
// per evaluation.
type Usage struct {
	Sites            int64
	MonthlyPageviews int64
	TeamMembers      int64
}

// Report pairs an account's limits with its usage for a single evaluation.
// The periodic re-check job consumes this to flag accounts over quota
// without blocking live traffic.
type Report struct {
	Limits Limits
	Usage  Usage
}

func (r Report) WithinSiteLimit() bool {
	return Within(r.Usage.Sites, r.Limits.Sites)
}

func (r Report) WithinPageviewLimit() bool {
	return Within(r.Usage.MonthlyPageviews, r.Limits.MonthlyPageviews)
}

func (r Report) WithinTeamMemberLimit() bool {
	return Within(r.Usage.TeamMembers, r.Limits.TeamMembers)
}

// WithinAll reports whether the account is inside every entitlement.
func (r Report) WithinAll() bool {
	return r.WithinSiteLimit() && r.WithinPageviewLimit() && r.WithinTeamMemberLimit()
}

// SiteStore provides ownership data for an account.
type SiteStore interface {
	// CountOwnedSites returns how many sites the account owns.
	CountOwnedSites(ctx context.Context, accountID uuid.UUID) (int64, error)

	// OwnedSiteIDs returns the identifiers of every site the account owns.
	OwnedSiteIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
}

// TeamStore provides membership and pending-invitation records restricted to
// a set of sites. Emails are returned as stored; deduplication happens here
// in the engine.
type TeamStore interface {
	MemberEmails(ctx context.Context, siteIDs []uuid.UUID) ([]string, error)
	PendingInviteEmails(ctx context.Context, siteIDs []uuid.UUID) ([]string, error)
}

// PageviewSource returns the per-category event counts for an account over
// the trailing 30 days. Categories are opaque to the engine; only their sum
// counts against the pageview limit.
type PageviewSource interface {
	UsageBreakdown(ctx context.Context, accountID uuid.UUID) (map[string]int64, error)
}

// Service is the entitlement engine's public surface. Limits and Usage are
// the raw building blocks; the Can* checks are convenience gates for callers
// that enforce synchronously before a mutating action.
type Service interface {
	// Plan resolves the account's subscription to a plan descriptor.
	Plan(ctx context.Context, acct Account) plan.Plan

	// Limits computes the account's three entitlements.
	Limits(ctx context.Context, acct Account) (Limits, error)

	// Usage computes current consumption for the three resources. Store
	// failures propagate as-is: there is no safe default usage value.
	Usage(ctx context.Context, acct Account) (Usage, error)

	// Report computes limits and usage in one evaluation.
	Report(ctx context.Context, acct Account) (Report, error)

	// CanCreateSite returns nil if the account may own one more site,
	// ErrOverLimit if it is at or over its cap.
	CanCreateSite(ctx context.Context, acct Account) error

	// CanInviteTeamMember returns nil if one more distinct person may join
	// the account's sites.
	CanInviteTeamMember(ctx context.Context, acct Account) error

	// CanAcceptTraffic returns nil if the trailing 30-day pageview count is
	// under the account's allowance.
	CanAcceptTraffic(ctx context.Context, acct Account) error
}

type service struct {
	resolver   *plan.Resolver
	sites      SiteStore
	team       TeamStore
	pageviews  PageviewSource
	selfHosted bool
}

// Option configures the quota service.
type Option func(*service)

// WithSelfHosted marks the deployment as self-hosted, which disables the
// site quota entirely. Passed explicitly so evaluation stays a pure function
// of its inputs.
func WithSelfHosted(selfHosted bool) Option {
	return func(s *service) {
		s.selfHosted = selfHosted
	}
}

// NewService wires the entitlement engine. All four collaborators are
// required.
func NewService(resolver *plan.Resolver, sites SiteStore, team TeamStore, pageviews PageviewSource, opts ...Option) (Service, error) {
	if resolver == nil || sites == nil || team == nil || pageviews == nil {
		return nil, ErrMissingDependency
	}

	s := &service{
		resolver:  resolver,
		sites:     sites,
		team:      team,
		pageviews: pageviews,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) Plan(ctx context.Context, acct Account) plan.Plan {
	return s.resolver.Resolve(ctx, acct.SubscriptionPlanID)
}

func (s *service) Limits(ctx context.Context, acct Account) (Limits, error) {
	if err := acct.Validate(); err != nil {
		return Limits{}, err
	}
	p := s.resolver.Resolve(ctx, acct.SubscriptionPlanID)
	return ComputeLimits(p, acct.CreatedAt, s.selfHosted), nil
}

func (s *service) Usage(ctx context.Context, acct Account) (Usage, error) {
	if err := acct.Validate(); err != nil {
		return Usage{}, err
	}

	// The three sub-queries hit independent stores and have no ordering
	// dependency, so they run concurrently within one evaluation.
	var u Usage
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.siteUsage(ctx, acct)
		if err != nil {
			return err
		}
		u.Sites = n
		return nil
	})

	g.Go(func() error {
		n, err := s.pageviewUsage(ctx, acct)
		if err != nil {
			return err
		}
		u.MonthlyPageviews = n
		return nil
	})

	g.Go(func() error {
		n, err := s.teamMemberUsage(ctx, acct)
		if err != nil {
			return err
		}
		u.TeamMembers = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *service) Report(ctx context.Context, acct Account) (Report, error) {
	limits, err := s.Limits(ctx, acct)
	if err != nil {
		return Report{}, err
	}
	usage, err := s.Usage(ctx, acct)
	if err != nil {
		return Report{}, err
	}
	return Report{Limits: limits, Usage: usage}, nil
}

func (s *service) CanCreateSite(ctx context.Context, acct Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}

	limit := SiteLimit(s.Plan(ctx, acct), acct.CreatedAt, s.selfHosted)
	if limit.IsUnlimited() {
		return nil
	}

	used, err := s.siteUsage(ctx, acct)
	if err != nil {
		return err
	}
	if !Within(used, limit) {
		return ErrOverLimit
	}
	return nil
}

func (s *service) CanInviteTeamMember(ctx context.Context, acct Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}

	limit := TeamMemberLimit(s.Plan(ctx, acct))
	if limit.IsUnlimited() {
		return nil
	}

	used, err := s.teamMemberUsage(ctx, acct)
	if err != nil {
		return err
	}
	if !Within(used, limit) {
		return ErrOverLimit
	}
	return nil
}

func (s *service) CanAcceptTraffic(ctx context.Context, acct Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}

	limit := MonthlyPageviewLimit(s.Plan(ctx, acct))
	if limit.IsUnlimited() {
		return nil
	}

	used, err := s.pageviewUsage(ctx, acct)
	if err != nil {
		return err
	}
	if !Within(used, limit) {
		return ErrOverLimit
	}
	return nil
}

func (s *service) siteUsage(ctx context.Context, acct Account) (int64, error) {
	n, err := s.sites.CountOwnedSites(ctx, acct.ID)
	if err != nil {
		return 0, errors.Join(ErrFailedToCountUsage, err)
	}
	if n < 0 {
		return 0, ErrNegativeUsage
	}
	return n, nil
}

func (s *service) pageviewUsage(ctx context.Context, acct Account) (int64, error) {
	breakdown, err := s.pageviews.UsageBreakdown(ctx, acct.ID)
	if err != nil {
		return 0, errors.Join(ErrFailedToCountUsage, err)
	}

	var total int64
	for _, n := range breakdown {
		if n < 0 {
			return 0, ErrNegativeUsage
		}
		total += n
	}
	return total, nil
}

func (s *service) teamMemberUsage(ctx context.Context, acct Account) (int64, error) {
	siteIDs, err := s.sites.OwnedSiteIDs(ctx, acct.ID)
	if err != nil {
		return 0, errors.Join(ErrFailedToCountUsage, err)
	}
	if len(siteIDs) == 0 {
		return 0, nil
	}

	members, err := s.team.MemberEmails(ctx, siteIDs)
	if err != nil {
		return 0, errors.Join(ErrFailedToCountUsage, err)
	}
	invites, err := s.team.PendingInviteEmails(ctx, siteIDs)
	if err != nil {
		return 0, errors.Join(ErrFailedToCountUsage, err)
	}

	return TeamMemberCount(acct.Email, members, invites), nil
}
