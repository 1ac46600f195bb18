package service

import (
	"context"

	"github.com/workhubpro/backend/internal/model"
)

// Subscription is a validated newsletter subscription request.
type Subscription struct {
	Email  string
	Source string
	Meta   model.RequestMeta
}

// SubscribeResult reports the outcome of a subscribe call.
// Created distinguishes a first-time subscription (201) from a
// reactivation (200).
type SubscribeResult struct {
	SubscriberID string
	Email        string
	Created      bool
	EmailSent    bool
}

// NewsletterService defines the business logic for the newsletter workflow.
type NewsletterService interface {
	// Subscribe creates or reactivates a subscription per the status
	// transition table. Returns ErrAlreadySubscribed for active addresses
	// and ErrBounced for bounced ones.
	Subscribe(ctx context.Context, sub Subscription) (*SubscribeResult, error)

	// Unsubscribe deactivates a subscription. Returns repository.ErrNotFound
	// for unknown addresses and ErrAlreadyUnsubscribed for repeats.
	Unsubscribe(ctx context.Context, email string) error

	// List returns one page of subscribers plus the total count for the filter.
	List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int, error)

	// Get returns a subscriber by email or repository.ErrNotFound.
	Get(ctx context.Context, email string) (*model.Subscriber, error)

	// Stats aggregates subscription counters.
	Stats(ctx context.Context) (*model.SubscriberStats, error)
}
