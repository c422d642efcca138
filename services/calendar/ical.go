package calendar

import (
	"context"
	"time"

	ical "github.com/arran4/golang-ical"
)

// ExportICS renders the session's events as an iCalendar document. Events
// carry no timezone, so timed events are emitted as floating local times and
// events without a time as all-day entries.
func (s *DefaultCalendarService) ExportICS(ctx context.Context, sessionID string) (string, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Mentu//Academic Calendar//EN")

	for _, e := range state.Events {
		ve := cal.AddEvent(e.ID + "@mentu")
		ve.SetDtStampTime(time.Now())
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		ve.SetLocation(e.Subject)
		ve.SetProperty(ical.ComponentPropertyCategories, string(e.Type))

		if start, perr := time.ParseInLocation("2006-01-02 15:04", e.Date+" "+e.Time, time.Local); perr == nil {
			ve.SetStartAt(start)
			ve.SetEndAt(start.Add(time.Hour))
			continue
		}
		// No usable time: fall back to an all-day entry on the event's date.
		if day, perr := time.ParseInLocation("2006-01-02", e.Date, time.Local); perr == nil {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
	}

	return cal.Serialize(), nil
}
