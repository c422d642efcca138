package calendar

import (
	"context"

	"mentu/models"
)

// CalendarService manages one client session's academic calendar: its event
// list, the add-event draft dialog, and the derived views over both.
type CalendarService interface {
	// Events returns the session's full event list in source order.
	Events(ctx context.Context, sessionID string) ([]models.CalendarEvent, error)
	// Overview returns the derived views for the given "today" date.
	Overview(ctx context.Context, sessionID, today string) (*models.CalendarOverview, error)
	// ToggleComplete flips an event's completed flag and returns the event.
	ToggleComplete(ctx context.Context, sessionID, eventID string) (*models.CalendarEvent, error)

	// OpenDraft opens the add-event dialog with an empty draft.
	OpenDraft(ctx context.Context, sessionID string) (*models.EventDraft, error)
	// UpdateDraft replaces the open draft's fields.
	UpdateDraft(ctx context.Context, sessionID string, draft models.EventDraft) (*models.EventDraft, error)
	// CommitDraft validates the open draft and appends it as a new event.
	CommitDraft(ctx context.Context, sessionID string) (*models.CalendarEvent, error)
	// CancelDraft closes the dialog leaving the event list untouched.
	CancelDraft(ctx context.Context, sessionID string) error

	// ExportICS renders the session's events as an iCalendar document.
	ExportICS(ctx context.Context, sessionID string) (string, error)
}
