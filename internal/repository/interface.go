package repository

import (
	"context"

	"github.com/workhubpro/backend/internal/model"
)

// DB is the minimal interface for database liveness checks.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact form submissions.
type ContactRepository interface {
	// Save inserts a new contact row and populates ID and timestamps.
	Save(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
	// Count returns the number of contacts matching the status filter
	// ("" or "all" counts every row).
	Count(ctx context.Context, status string) (int, error)
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	// UpdateStatus changes a contact's status and touches updated_at.
	// Returns ErrNotFound when no row matches id.
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// SubscriberRepository defines the persistence interface for newsletter subscribers.
type SubscriberRepository interface {
	// FindByEmail returns the subscriber row for email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	// Create inserts a new active subscriber and populates ID and SubscribedAt.
	Create(ctx context.Context, s *model.Subscriber) error
	// Reactivate flips an unsubscribed row back to active, clears
	// unsubscribed_at and refreshes subscribed_at, source, ip and user agent.
	Reactivate(ctx context.Context, email, source, ipAddress, userAgent string) error
	// Unsubscribe sets status=unsubscribed and stamps unsubscribed_at.
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, error)
	Count(ctx context.Context, status string) (int, error)
	Stats(ctx context.Context) (*model.SubscriberStats, error)
}

// EmailLogRepository records outbound email attempts. The log is append-only;
// there is no update or delete.
type EmailLogRepository interface {
	Save(ctx context.Context, l *model.EmailLog) error
}
