package model

import "time"

// Email log types, one per outbound email kind.
const (
	EmailTypeContact      = "contact"      // confirmation to the form submitter
	EmailTypeNewsletter   = "newsletter"   // welcome email to a new subscriber
	EmailTypeNotification = "notification" // admin notification
)

// Email log statuses.
const (
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusPending = "pending"
)

// EmailLog is an append-only audit record of one outbound email attempt.
// Rows are never updated after insert.
type EmailLog struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"` // "contact" | "newsletter" | "notification"
	RecipientEmail string     `json:"recipient_email"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"` // "sent" | "failed" | "pending"
	ErrorMessage   string     `json:"error_message,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
