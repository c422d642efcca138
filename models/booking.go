package models

// BookingDuration values a session can be booked for, in minutes.
var BookingDurations = []int{30, 60, 90, 120}

// ValidBookingDuration reports whether minutes is one of the offered durations.
func ValidBookingDuration(minutes int) bool {
	for _, d := range BookingDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// BookingDraft is the transient form state for booking a session with a
// tutor. It is discarded on confirm or cancel and never persisted.
type BookingDraft struct {
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Duration    int         `json:"duration"`
	SessionType SessionType `json:"sessionType"`
	Topic       string      `json:"topic"`
	Notes       string      `json:"notes"`
}

// BookingSession is a live booking draft keyed to a single tutor, held in
// the session store with a TTL.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	TutorID   string       `json:"tutorId"`
	Draft     BookingDraft `json:"draft"`
}

// BookingQuote is the computed cost of the current draft.
// Display carries the two-decimal currency rendering; Total is the raw value.
type BookingQuote struct {
	HourlyRate float64 `json:"hourlyRate"`
	Duration   int     `json:"duration"`
	Total      float64 `json:"total"`
	Display    string  `json:"display"`
}

// BookingConfirmation echoes a confirmed draft back to the client. Nothing
// is stored: the contract here is "construct and validate", not "execute".
type BookingConfirmation struct {
	TutorID   string       `json:"tutorId"`
	TutorName string       `json:"tutorName"`
	Draft     BookingDraft `json:"draft"`
	Quote     BookingQuote `json:"quote"`
}
