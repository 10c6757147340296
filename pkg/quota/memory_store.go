package quota

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemStore is an in-memory implementation of SiteStore, TeamStore, and
// PageviewSource. Intended for tests and local development.
type InMemStore struct {
	mu        sync.RWMutex
	owners    map[uuid.UUID][]uuid.UUID      // account -> owned site IDs
	members   map[uuid.UUID][]string         // site -> member emails
	invites   map[uuid.UUID][]string         // site -> pending invite emails
	pageviews map[uuid.UUID]map[string]int64 // account -> 30-day breakdown
}

// NewInMemStore returns an empty in-memory store.
func NewInMemStore() *InMemStore {
	return &InMemStore{
		owners:    make(map[uuid.UUID][]uuid.UUID),
		members:   make(map[uuid.UUID][]string),
		invites:   make(map[uuid.UUID][]string),
		pageviews: make(map[uuid.UUID]map[string]int64),
	}
}

// AddSite registers a new site owned by the account and returns its ID.
func (s *InMemStore) AddSite(owner uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	siteID := uuid.New()
	s.owners[owner] = append(s.owners[owner], siteID)
	return siteID
}

// AddMember records a membership on a site.
func (s *InMemStore) AddMember(siteID uuid.UUID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[siteID] = append(s.members[siteID], email)
}

// AddInvite records a pending invitation on a site.
func (s *InMemStore) AddInvite(siteID uuid.UUID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[siteID] = append(s.invites[siteID], email)
}

// RecordPageviews adds to the account's 30-day breakdown for a category.
func (s *InMemStore) RecordPageviews(account uuid.UUID, category string, n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pageviews[account] == nil {
		s.pageviews[account] = make(map[string]int64)
	}
	s.pageviews[account][category] += n
}

func (s *InMemStore) CountOwnedSites(_ context.Context, accountID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.owners[accountID])), nil
}

func (s *InMemStore) OwnedSiteIDs(_ context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, len(s.owners[accountID]))
	copy(ids, s.owners[accountID])
	return ids, nil
}

func (s *InMemStore) MemberEmails(_ context.Context, siteIDs []uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emails []string
	for _, id := range siteIDs {
		emails = append(emails, s.members[id]...)
	}
	return emails, nil
}

func (s *InMemStore) PendingInviteEmails(_ context.Context, siteIDs []uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emails []string
	for _, id := range siteIDs {
		emails = append(emails, s.invites[id]...)
	}
	return emails, nil
}

func (s *InMemStore) UsageBreakdown(_ context.Context, accountID uuid.UUID) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int64, len(s.pageviews[accountID]))
	for category, n := range s.pageviews[accountID] {
		out[category] = n
	}
	return out, nil
}
