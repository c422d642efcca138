package calendar

import (
	"sort"

	"mentu/models"
)

// Derivations over an event list. All take the snapshot and "today" (an ISO
// "YYYY-MM-DD" date) explicitly so they stay pure and testable; ISO date
// strings order lexicographically in chronological order, so comparisons
// never touch the time-of-day field. An event dated today with a past time
// is "today", never overdue.

const upcomingLimit = 5

// TodayEvents returns events dated exactly today, in source order.
func TodayEvents(events []models.CalendarEvent, today string) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0)
	for _, e := range events {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents returns events dated today or later, ascending by date,
// capped at five. Ties keep their source order.
func UpcomingEvents(events []models.CalendarEvent, today string) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0)
	for _, e := range events {
		if e.Date >= today {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// OverdueEvents returns uncompleted events dated strictly before today.
func OverdueEvents(events []models.CalendarEvent, today string) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0)
	for _, e := range events {
		if e.Date < today && !e.Completed {
			out = append(out, e)
		}
	}
	return out
}

// CountPriorities tallies events per priority level.
func CountPriorities(events []models.CalendarEvent) models.PriorityCounts {
	var counts models.PriorityCounts
	for _, e := range events {
		switch e.Priority {
		case models.PriorityHigh:
			counts.High++
		case models.PriorityMedium:
			counts.Medium++
		case models.PriorityLow:
			counts.Low++
		}
	}
	return counts
}

// BuildOverview assembles every derived view the calendar page renders.
func BuildOverview(events []models.CalendarEvent, today string) models.CalendarOverview {
	completed := 0
	for _, e := range events {
		if e.Completed {
			completed++
		}
	}
	return models.CalendarOverview{
		Today:          TodayEvents(events, today),
		Upcoming:       UpcomingEvents(events, today),
		Overdue:        OverdueEvents(events, today),
		PriorityCounts: CountPriorities(events),
		TotalCount:     len(events),
		CompletedCount: completed,
	}
}
