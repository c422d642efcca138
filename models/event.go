package models

// EventType classifies an academic calendar event.
type EventType string

const (
	EventAssignment EventType = "assignment"
	EventExam       EventType = "exam"
	EventProject    EventType = "project"
	EventClass      EventType = "class"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventAssignment, EventExam, EventProject, EventClass:
		return true
	}
	return false
}

// Priority is the urgency level attached to an event.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// CalendarEvent is an academic deadline or occurrence on a student's calendar.
// Date is a plain "YYYY-MM-DD" string and Time a 24h "HH:MM" wall-clock string;
// neither carries a timezone.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Subject     string    `json:"subject"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed,omitempty"`
}

// EventDraft is the uncommitted form state for a new calendar event.
type EventDraft struct {
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Subject     string    `json:"subject"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description"`
}

// NewEventDraft returns a draft with the form's empty defaults.
func NewEventDraft() EventDraft {
	return EventDraft{
		Type:     EventAssignment,
		Priority: PriorityMedium,
	}
}

// DraftState tracks the add-event dialog lifecycle.
type DraftState string

const (
	DraftClosed    DraftState = "closed"
	DraftOpen      DraftState = "open"
	DraftCommitted DraftState = "committed"
)

// CalendarState is one client session's calendar: its event list plus the
// add-event draft. Each session owns an independent copy; nothing is shared
// or persisted beyond the session's lifetime.
type CalendarState struct {
	Events     []CalendarEvent `json:"events"`
	Draft      EventDraft      `json:"draft"`
	DraftState DraftState      `json:"draftState"`
}

// PriorityCounts is the per-priority event tally shown in the sidebar.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CalendarOverview bundles the derived views for the calendar page.
type CalendarOverview struct {
	Today          []CalendarEvent `json:"today"`
	Upcoming       []CalendarEvent `json:"upcoming"`
	Overdue        []CalendarEvent `json:"overdue"`
	PriorityCounts PriorityCounts  `json:"priorityCounts"`
	TotalCount     int             `json:"totalCount"`
	CompletedCount int             `json:"completedCount"`
}
