package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/statsdeck/quotakit/pkg/quota"
)

// PGStore implements quota.SiteStore and quota.TeamStore over the platform's
// Postgres schema (accounts, site_memberships, invitations). It only reads;
// site and membership writes belong to the sites service.
type PGStore struct {
	db *pgxpool.Pool
}

// NewPGStore returns a store over the given connection pool.
func NewPGStore(db *pgxpool.Pool) (*PGStore, error) {
	if db == nil {
		return nil, ErrNilPool
	}
	return &PGStore{db: db}, nil
}

func (s *PGStore) CountOwnedSites(ctx context.Context, accountID uuid.UUID) (int64, error) {
	const q = `
		SELECT count(*)
		FROM site_memberships
		WHERE account_id = $1 AND role = 'owner'`

	var n int64
	if err := s.db.QueryRow(ctx, q, accountID.String()).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return n, nil
}

func (s *PGStore) OwnedSiteIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	const q = `
		SELECT site_id
		FROM site_memberships
		WHERE account_id = $1 AND role = 'owner'`

	rows, err := s.db.Query(ctx, q, accountID.String())
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return ids, nil
}

func (s *PGStore) MemberEmails(ctx context.Context, siteIDs []uuid.UUID) ([]string, error) {
	const q = `
		SELECT a.email
		FROM site_memberships m
		JOIN accounts a ON a.id = m.account_id
		WHERE m.site_id = ANY($1::uuid[])`

	return s.queryEmails(ctx, q, siteIDs)
}

func (s *PGStore) PendingInviteEmails(ctx context.Context, siteIDs []uuid.UUID) ([]string, error) {
	const q = `
		SELECT email
		FROM invitations
		WHERE site_id = ANY($1::uuid[]) AND accepted_at IS NULL`

	return s.queryEmails(ctx, q, siteIDs)
}

func (s *PGStore) queryEmails(ctx context.Context, q string, siteIDs []uuid.UUID) ([]string, error) {
	rows, err := s.db.Query(ctx, q, uuidStrings(siteIDs))
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return emails, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

var _ quota.SiteStore = (*PGStore)(nil)
var _ quota.TeamStore = (*PGStore)(nil)
