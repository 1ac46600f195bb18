package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/workhubpro/backend/internal/model"
	"github.com/workhubpro/backend/internal/repository"
	"github.com/workhubpro/backend/pkg/mailer"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	contacts   repository.ContactRepository
	emailLogs  repository.EmailLogRepository
	mail       mailer.Mailer
	adminEmail string
}

// NewContactService creates a ContactService. An empty adminEmail disables
// the admin notification step.
func NewContactService(contacts repository.ContactRepository, emailLogs repository.EmailLogRepository, mail mailer.Mailer, adminEmail string) ContactService {
	return &contactServiceImpl{
		contacts:   contacts,
		emailLogs:  emailLogs,
		mail:       mail,
		adminEmail: adminEmail,
	}
}

// Submit runs the contact workflow: insert → confirmation email → email log
// → best-effort admin notification. The insert is the only critical step;
// once the row exists, email failures only affect the reported EmailSent flag.
func (s *contactServiceImpl) Submit(ctx context.Context, sub ContactSubmission) (*SubmitResult, error) {
	c := &model.Contact{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
		Status:  model.ContactStatusNew,
	}
	if err := s.contacts.Save(ctx, c); err != nil {
		return nil, err
	}

	data := mailer.ContactData{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Subject: c.Subject,
		Message: c.Message,
	}

	confirmation := mailer.ContactConfirmation(data)
	result := s.mail.Send(ctx, c.Email, confirmation.Subject, confirmation.HTML)
	logEmailAttempt(ctx, s.emailLogs, model.EmailTypeContact, c.Email, confirmation.Subject, result)

	if s.adminEmail != "" {
		notification := mailer.AdminNotification(data)
		adminResult := s.mail.Send(ctx, s.adminEmail, notification.Subject, notification.HTML)
		logEmailAttempt(ctx, s.emailLogs, model.EmailTypeNotification, s.adminEmail, notification.Subject, adminResult)
	}

	return &SubmitResult{ContactID: c.ID, EmailSent: result.Success}, nil
}

// logEmailAttempt appends one email_logs row for a send attempt. It is
// shared by the contact and newsletter workflows. A failure to write the
// log row is itself logged and otherwise swallowed; the audit trail must
// never fail the request.
func logEmailAttempt(ctx context.Context, logs repository.EmailLogRepository, emailType, recipient, subject string, result mailer.Result) {
	entry := &model.EmailLog{
		Type:           emailType,
		RecipientEmail: recipient,
		Subject:        subject,
		Status:         model.EmailStatusSent,
	}
	if result.Success {
		now := time.Now().UTC()
		entry.SentAt = &now
	} else {
		entry.Status = model.EmailStatusFailed
		entry.ErrorMessage = result.Err
		slog.Warn("email send failed", "type", emailType, "recipient", recipient, "error", result.Err)
	}
	if err := logs.Save(ctx, entry); err != nil {
		slog.Error("email log write failed", "type", emailType, "recipient", recipient, "error", err)
	}
}

// List returns one page of contacts plus the total count for the filter.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int, error) {
	contacts, err := s.contacts.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contacts.Count(ctx, opts.Status)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// Get returns a single contact by id.
func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.Contact, error) {
	return s.contacts.FindByID(ctx, id)
}

// UpdateStatus transitions a contact's status after checking the enum.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidContactStatus(status) {
		return ErrInvalidStatus
	}
	return s.contacts.UpdateStatus(ctx, id, status)
}

// Delete removes a contact by id.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}
