package calendar

import (
	"encoding/json"
	"testing"

	"mentu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureEvents() []models.CalendarEvent {
	return []models.CalendarEvent{
		{ID: "a", Title: "Quiz", Date: "2025-03-08", Priority: models.PriorityHigh},
		{ID: "b", Title: "Essay", Date: "2025-03-10", Priority: models.PriorityMedium, Completed: true},
		{ID: "c", Title: "Lab", Date: "2025-03-10", Priority: models.PriorityHigh},
		{ID: "d", Title: "Reading", Date: "2025-03-12", Priority: models.PriorityLow},
		{ID: "e", Title: "Project", Date: "2025-03-09", Priority: models.PriorityMedium},
		{ID: "f", Title: "Review", Date: "2025-03-15", Priority: models.PriorityLow},
		{ID: "g", Title: "Practice", Date: "2025-03-14", Priority: models.PriorityMedium},
	}
}

func TestTodayEvents(t *testing.T) {
	events := fixtureEvents()

	today := TodayEvents(events, "2025-03-10")
	require.Len(t, today, 2)
	// Source order preserved.
	assert.Equal(t, "b", today[0].ID)
	assert.Equal(t, "c", today[1].ID)

	assert.Empty(t, TodayEvents(events, "2025-03-11"))
}

func TestUpcomingEvents(t *testing.T) {
	t.Run("sorted ascending and capped at five", func(t *testing.T) {
		upcoming := UpcomingEvents(fixtureEvents(), "2025-03-10")
		require.Len(t, upcoming, 5)
		for i := 1; i < len(upcoming); i++ {
			assert.LessOrEqual(t, upcoming[i-1].Date, upcoming[i].Date)
		}
	})

	t.Run("includes today, excludes past", func(t *testing.T) {
		upcoming := UpcomingEvents(fixtureEvents(), "2025-03-12")
		require.Len(t, upcoming, 3)
		assert.Equal(t, "d", upcoming[0].ID)
	})

	t.Run("date ties keep source order", func(t *testing.T) {
		upcoming := UpcomingEvents(fixtureEvents(), "2025-03-10")
		assert.Equal(t, "b", upcoming[0].ID)
		assert.Equal(t, "c", upcoming[1].ID)
	})
}

func TestOverdueEvents(t *testing.T) {
	t.Run("strictly before today and not completed", func(t *testing.T) {
		overdue := OverdueEvents(fixtureEvents(), "2025-03-11")
		ids := make([]string, 0, len(overdue))
		for _, e := range overdue {
			ids = append(ids, e.ID)
		}
		// "b" is past but completed, so it is excluded.
		assert.Equal(t, []string{"a", "c", "e"}, ids)
	})

	t.Run("an event dated today is never overdue regardless of time", func(t *testing.T) {
		events := []models.CalendarEvent{
			{ID: "x", Date: "2025-03-10", Time: "00:01"},
		}
		assert.Empty(t, OverdueEvents(events, "2025-03-10"))
	})

	t.Run("completed toggles eligibility", func(t *testing.T) {
		events := fixtureEvents()
		events[0].Completed = true
		overdue := OverdueEvents(events, "2025-03-11")
		for _, e := range overdue {
			assert.NotEqual(t, "a", e.ID)
		}
	})
}

func TestCountPriorities(t *testing.T) {
	events := fixtureEvents()
	counts := CountPriorities(events)

	assert.Equal(t, 2, counts.High)
	assert.Equal(t, 3, counts.Medium)
	assert.Equal(t, 2, counts.Low)
	// Counts must sum to the total event count.
	assert.Equal(t, len(events), counts.High+counts.Medium+counts.Low)
}

func TestBuildOverview(t *testing.T) {
	overview := BuildOverview(fixtureEvents(), "2025-03-10")

	assert.Equal(t, 7, overview.TotalCount)
	assert.Equal(t, 1, overview.CompletedCount)
	assert.Len(t, overview.Today, 2)
	assert.Len(t, overview.Upcoming, 5)
	assert.Len(t, overview.Overdue, 2)
	assert.Equal(t, overview.TotalCount,
		overview.PriorityCounts.High+overview.PriorityCounts.Medium+overview.PriorityCounts.Low)
}

func TestBuildOverviewEmpty(t *testing.T) {
	overview := BuildOverview(nil, "2025-03-10")
	assert.Zero(t, overview.TotalCount)
	assert.Empty(t, overview.Upcoming)
	assert.Zero(t, overview.PriorityCounts.High+overview.PriorityCounts.Medium+overview.PriorityCounts.Low)
}

func TestEmptyViewsMarshalAsArrays(t *testing.T) {
	data, err := json.Marshal(BuildOverview(nil, "2025-03-10"))
	require.NoError(t, err)

	payload := string(data)
	assert.Contains(t, payload, `"today":[]`)
	assert.Contains(t, payload, `"upcoming":[]`)
	assert.Contains(t, payload, `"overdue":[]`)
	assert.NotContains(t, payload, "null")
}
