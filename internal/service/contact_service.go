package service

import (
	"context"

	"github.com/workhubpro/backend/internal/model"
)

// ContactSubmission is a validated contact form submission plus request metadata.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
	Meta    model.RequestMeta
}

// SubmitResult reports the outcome of one contact form submission.
// EmailSent refers to the confirmation email only; the admin notification
// outcome is recorded in the email log but never surfaced to the caller.
type SubmitResult struct {
	ContactID string
	EmailSent bool
}

// ContactService defines the business logic for the contact form workflow.
type ContactService interface {
	// Submit persists the contact, sends the confirmation email, records
	// the attempt in the email log and fires the best-effort admin
	// notification. Only the initial insert can fail the call.
	Submit(ctx context.Context, sub ContactSubmission) (*SubmitResult, error)

	// List returns one page of contacts plus the total count for the filter.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int, error)

	// Get returns a single contact or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.Contact, error)

	// UpdateStatus transitions a contact to one of the enumerated statuses.
	// Returns ErrInvalidStatus for out-of-set values, repository.ErrNotFound
	// when the id does not exist.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a contact or returns repository.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
