package model

import "time"

// Contact status values.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// Contact represents a message submitted via the contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "new" | "read" | "replied" | "closed"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidContactStatus reports whether s is one of the enumerated contact statuses.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusClosed:
		return true
	}
	return false
}

// ContactListOptions carries filter and pagination parameters for listing contacts.
type ContactListOptions struct {
	// Status filters by contact status: "", "all", or one of the enumerated values.
	// Empty string and "all" return all contacts.
	Status string
	Limit  int
	Offset int
}

// RequestMeta carries client metadata captured from the HTTP request.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
