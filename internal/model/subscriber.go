package model

import "time"

// Subscriber status values.
const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
	SubscriberStatusBounced      = "bounced"
)

// Subscriber represents one newsletter subscription. The email column is
// unique, so at most one row exists per address across its whole lifecycle.
type Subscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"` // "active" | "unsubscribed" | "bounced"
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	Source         string     `json:"source"`
	IPAddress      string     `json:"-"`
	UserAgent      string     `json:"-"`
}

// SubscriberListOptions carries filter and pagination parameters for listing subscribers.
type SubscriberListOptions struct {
	// Status filters by subscription status: "", "all", or one of the enumerated values.
	Status string
	Limit  int
	Offset int
}

// SourceCount is one row of the per-source subscription breakdown.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// SubscriberStats aggregates newsletter subscription counters.
type SubscriberStats struct {
	Total        int           `json:"total"`
	Active       int           `json:"active"`
	Unsubscribed int           `json:"unsubscribed"`
	Bounced      int           `json:"bounced"`
	Recent       int           `json:"recent"` // subscribed within the last 30 days
	BySource     []SourceCount `json:"bySource"`
}
