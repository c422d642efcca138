package booking

import (
	"context"

	"mentu/models"
)

// BookingService manages transient booking drafts, each keyed to a single
// tutor. Confirm validates and discards; no booking is ever stored.
type BookingService interface {
	// Initiate opens a booking session against the given tutor with the
	// draft defaults.
	Initiate(ctx context.Context, tutorID string) (*models.BookingSession, error)
	// Update replaces the draft, enforcing the duration set and the tutor's
	// supported session types.
	Update(ctx context.Context, sessionID string, draft models.BookingDraft) (*models.BookingSession, error)
	// Quote prices the current draft.
	Quote(ctx context.Context, sessionID string) (*models.BookingQuote, error)
	// Confirm validates the draft, logs the booking, and drops the session.
	Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
	// Cancel discards the session, leaving no trace.
	Cancel(ctx context.Context, sessionID string) error
}
