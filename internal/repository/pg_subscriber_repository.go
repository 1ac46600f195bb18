package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workhubpro/backend/internal/model"
)

// PgSubscriberRepository is the PostgreSQL implementation of SubscriberRepository.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriberRepository creates a PgSubscriberRepository backed by the given pool.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

// FindByEmail returns the subscriber row for email, or ErrNotFound.
func (r *PgSubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, status, subscribed_at, unsubscribed_at,
		        COALESCE(source, ''), COALESCE(ip_address, ''), COALESCE(user_agent, '')
		 FROM newsletter_subscribers WHERE email = $1`, email,
	).Scan(&s.ID, &s.Email, &s.Status, &s.SubscribedAt, &s.UnsubscribedAt, &s.Source, &s.IPAddress, &s.UserAgent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new newsletter_subscribers row and populates s.ID and
// s.SubscribedAt from the database RETURNING clause.
func (r *PgSubscriberRepository) Create(ctx context.Context, s *model.Subscriber) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscribers (email, status, source, ip_address, user_agent)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		 RETURNING id, subscribed_at`,
		s.Email, s.Status, s.Source, s.IPAddress, s.UserAgent,
	).Scan(&s.ID, &s.SubscribedAt)
}

// Reactivate flips an unsubscribed row back to active, refreshing the
// subscription metadata. Returns ErrNotFound when no row matches.
func (r *PgSubscriberRepository) Reactivate(ctx context.Context, email, source, ipAddress, userAgent string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers
		 SET status = 'active', subscribed_at = NOW(), unsubscribed_at = NULL,
		     source = $1, ip_address = NULLIF($2, ''), user_agent = NULLIF($3, '')
		 WHERE email = $4`,
		source, ipAddress, userAgent, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Unsubscribe sets status=unsubscribed and stamps unsubscribed_at.
func (r *PgSubscriberRepository) Unsubscribe(ctx context.Context, email string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers
		 SET status = 'unsubscribed', unsubscribed_at = NOW()
		 WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns subscribers filtered by status and paginated by limit/offset,
// most recently subscribed first.
func (r *PgSubscriberRepository) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $1")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := fmt.Sprintf(
		`SELECT id, email, status, subscribed_at, unsubscribed_at,
		        COALESCE(source, ''), COALESCE(ip_address, ''), COALESCE(user_agent, '')
		 FROM newsletter_subscribers %s
		 ORDER BY subscribed_at DESC
		 LIMIT $%d OFFSET $%d`, where, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Status, &s.SubscribedAt, &s.UnsubscribedAt, &s.Source, &s.IPAddress, &s.UserAgent); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Count returns the number of subscribers matching the status filter.
func (r *PgSubscriberRepository) Count(ctx context.Context, status string) (int, error) {
	status = strings.TrimSpace(status)
	var total int
	if status == "" || status == "all" {
		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&total)
		return total, err
	}
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers WHERE status = $1`, status).Scan(&total)
	return total, err
}

// Stats aggregates subscription counters in a single round-trip, plus the
// per-source breakdown.
func (r *PgSubscriberRepository) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	var stats model.SubscriberStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'active'),
		        COUNT(*) FILTER (WHERE status = 'unsubscribed'),
		        COUNT(*) FILTER (WHERE status = 'bounced'),
		        COUNT(*) FILTER (WHERE subscribed_at >= NOW() - INTERVAL '30 days')
		 FROM newsletter_subscribers`,
	).Scan(&stats.Total, &stats.Active, &stats.Unsubscribed, &stats.Bounced, &stats.Recent)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT COALESCE(source, ''), COUNT(*)
		 FROM newsletter_subscribers
		 GROUP BY source
		 ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc model.SourceCount
		if err := rows.Scan(&sc.Source, &sc.Count); err != nil {
			return nil, err
		}
		stats.BySource = append(stats.BySource, sc)
	}
	return &stats, rows.Err()
}
