package service

import "errors"

// Conflict errors reported precisely to the caller; everything else
// escalates to a generic failure.
var (
	// ErrInvalidStatus is returned when a contact status update names a
	// value outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrAlreadySubscribed is returned when an active address subscribes again.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrAlreadyUnsubscribed is returned when an unsubscribed address
	// unsubscribes again.
	ErrAlreadyUnsubscribed = errors.New("already unsubscribed")

	// ErrBounced is returned when a bounced address attempts to subscribe.
	// Bounced addresses are not eligible for resubscription via the public API.
	ErrBounced = errors.New("address previously bounced")
)
