package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/workhubpro/backend/internal/model"
	"github.com/workhubpro/backend/internal/repository"
	"github.com/workhubpro/backend/pkg/mailer"
)

// transition declares the outcome of an action against an existing
// subscriber row. Exactly one of reject or the effect fields applies.
type transition struct {
	reject      error // returned as-is; no state change, no email
	reactivate  bool  // flip the row back to active
	deactivate  bool  // flip the row to unsubscribed
	sendWelcome bool
}

// subscribeTransitions and unsubscribeTransitions make every
// (current status, action) pair an explicit decision. In particular,
// (bounced, subscribe) is a deliberate rejection: a bounced address must
// not re-enter the list through the public endpoint.
var (
	subscribeTransitions = map[string]transition{
		model.SubscriberStatusActive:       {reject: ErrAlreadySubscribed},
		model.SubscriberStatusUnsubscribed: {reactivate: true, sendWelcome: true},
		model.SubscriberStatusBounced:      {reject: ErrBounced},
	}
	unsubscribeTransitions = map[string]transition{
		model.SubscriberStatusActive:       {deactivate: true},
		model.SubscriberStatusUnsubscribed: {reject: ErrAlreadyUnsubscribed},
		model.SubscriberStatusBounced:      {deactivate: true},
	}
)

// newsletterServiceImpl is the production implementation of NewsletterService.
type newsletterServiceImpl struct {
	subscribers repository.SubscriberRepository
	emailLogs   repository.EmailLogRepository
	mail        mailer.Mailer
}

// NewNewsletterService creates a NewsletterService backed by the given
// repositories and mail gateway.
func NewNewsletterService(subscribers repository.SubscriberRepository, emailLogs repository.EmailLogRepository, mail mailer.Mailer) NewsletterService {
	return &newsletterServiceImpl{
		subscribers: subscribers,
		emailLogs:   emailLogs,
		mail:        mail,
	}
}

// Subscribe creates a new subscription or applies the transition for the
// existing row's status. The welcome email is sent after the state change
// commits; its failure is recorded but does not fail the call.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, sub Subscription) (*SubscribeResult, error) {
	existing, err := s.subscribers.FindByEmail(ctx, sub.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return s.create(ctx, sub)
	}
	if err != nil {
		return nil, err
	}

	t, ok := subscribeTransitions[existing.Status]
	if !ok {
		return nil, fmt.Errorf("subscriber %s has unknown status %q", existing.ID, existing.Status)
	}
	if t.reject != nil {
		return nil, t.reject
	}
	if t.reactivate {
		if err := s.subscribers.Reactivate(ctx, sub.Email, sub.Source, sub.Meta.IPAddress, sub.Meta.UserAgent); err != nil {
			return nil, err
		}
	}

	sent := false
	if t.sendWelcome {
		sent = s.sendWelcome(ctx, sub.Email)
	}
	return &SubscribeResult{SubscriberID: existing.ID, Email: sub.Email, EmailSent: sent}, nil
}

// create inserts a first-time subscriber row and sends the welcome email.
func (s *newsletterServiceImpl) create(ctx context.Context, sub Subscription) (*SubscribeResult, error) {
	row := &model.Subscriber{
		Email:     sub.Email,
		Status:    model.SubscriberStatusActive,
		Source:    sub.Source,
		IPAddress: sub.Meta.IPAddress,
		UserAgent: sub.Meta.UserAgent,
	}
	if err := s.subscribers.Create(ctx, row); err != nil {
		return nil, err
	}
	sent := s.sendWelcome(ctx, sub.Email)
	return &SubscribeResult{SubscriberID: row.ID, Email: sub.Email, Created: true, EmailSent: sent}, nil
}

// sendWelcome sends the welcome email and records the attempt.
func (s *newsletterServiceImpl) sendWelcome(ctx context.Context, email string) bool {
	welcome := mailer.NewsletterWelcome(email)
	result := s.mail.Send(ctx, email, welcome.Subject, welcome.HTML)
	logEmailAttempt(ctx, s.emailLogs, model.EmailTypeNewsletter, email, welcome.Subject, result)
	return result.Success
}

// Unsubscribe applies the unsubscribe transition for the address.
// No email is sent on unsubscribe.
func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	existing, err := s.subscribers.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	t, ok := unsubscribeTransitions[existing.Status]
	if !ok {
		return fmt.Errorf("subscriber %s has unknown status %q", existing.ID, existing.Status)
	}
	if t.reject != nil {
		return t.reject
	}
	return s.subscribers.Unsubscribe(ctx, email)
}

// List returns one page of subscribers plus the total count for the filter.
func (s *newsletterServiceImpl) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int, error) {
	subs, err := s.subscribers.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.subscribers.Count(ctx, opts.Status)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// Get returns a subscriber by email.
func (s *newsletterServiceImpl) Get(ctx context.Context, email string) (*model.Subscriber, error) {
	return s.subscribers.FindByEmail(ctx, email)
}

// Stats aggregates subscription counters.
func (s *newsletterServiceImpl) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	return s.subscribers.Stats(ctx)
}
