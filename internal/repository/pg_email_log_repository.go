package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workhubpro/backend/internal/model"
)

// PgEmailLogRepository is the PostgreSQL implementation of EmailLogRepository.
type PgEmailLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgEmailLogRepository creates a PgEmailLogRepository backed by the given pool.
func NewPgEmailLogRepository(pool *pgxpool.Pool) *PgEmailLogRepository {
	return &PgEmailLogRepository{pool: pool}
}

var _ EmailLogRepository = (*PgEmailLogRepository)(nil)

// Save appends one email attempt record and populates l.ID and l.CreatedAt.
func (r *PgEmailLogRepository) Save(ctx context.Context, l *model.EmailLog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO email_logs (type, recipient_email, subject, status, error_message, sent_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id, created_at`,
		l.Type, l.RecipientEmail, l.Subject, l.Status, l.ErrorMessage, l.SentAt,
	).Scan(&l.ID, &l.CreatedAt)
}
