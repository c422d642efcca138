package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"mentu/models"
	"mentu/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*DefaultCalendarService, string) {
	t.Helper()
	svc := &DefaultCalendarService{
		Sessions: session.NewMemoryStore(),
		TTL:      time.Hour,
	}
	return svc, "test-session"
}

func TestEventsSeedsFreshSession(t *testing.T) {
	svc, sid := setup(t)
	ctx := context.Background()

	events, err := svc.Events(ctx, sid)
	require.NoError(t, err)
	require.Len(t, events, len(SeedEvents()))

	// Independent sessions get independent copies.
	other, err := svc.Events(ctx, "other-session")
	require.NoError(t, err)
	require.Len(t, other, len(SeedEvents()))
}

func TestCommitDraft(t *testing.T) {
	t.Run("valid draft appends one event and resets the draft", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		before, err := svc.Events(ctx, sid)
		require.NoError(t, err)

		_, err = svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Title:    "Biology Quiz",
			Type:     models.EventExam,
			Subject:  "Biology",
			Date:     "2025-04-01",
			Time:     "09:30",
			Priority: models.PriorityHigh,
		})
		require.NoError(t, err)

		event, err := svc.CommitDraft(ctx, sid)
		require.NoError(t, err)
		require.NotEmpty(t, event.ID)
		for _, e := range before {
			assert.NotEqual(t, e.ID, event.ID)
		}

		after, err := svc.Events(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, after, len(before)+1)
		assert.False(t, event.Completed)

		// Reopening shows the empty defaults again.
		draft, err := svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.NewEventDraft(), *draft)
	})

	t.Run("missing title rejects and leaves the event list unchanged", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		before, err := svc.Events(ctx, sid)
		require.NoError(t, err)

		_, err = svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Subject: "Biology",
			Date:    "2025-04-01",
		})
		require.NoError(t, err)

		_, err = svc.CommitDraft(ctx, sid)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Missing, "title")

		after, err := svc.Events(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		// The dialog stays open: filling the title makes the commit succeed.
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Title:   "Biology Quiz",
			Subject: "Biology",
			Date:    "2025-04-01",
		})
		require.NoError(t, err)
		_, err = svc.CommitDraft(ctx, sid)
		require.NoError(t, err)
	})

	t.Run("malformed date is reported as invalid", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		_, err := svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Title:   "Quiz",
			Subject: "Biology",
			Date:    "01/04/2025",
		})
		require.NoError(t, err)

		_, err = svc.CommitDraft(ctx, sid)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Invalid, "date")
	})

	t.Run("unknown priority is rejected and counts stay consistent", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		_, err := svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Title:    "Cram Session",
			Type:     models.EventClass,
			Subject:  "Chemistry",
			Date:     "2025-04-05",
			Priority: "urgent",
		})
		require.NoError(t, err)

		_, err = svc.CommitDraft(ctx, sid)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Invalid, "priority")

		// Nothing landed, and every event still falls in one bucket.
		overview, err := svc.Overview(ctx, sid, "2025-04-01")
		require.NoError(t, err)
		assert.Equal(t, len(SeedEvents()), overview.TotalCount)
		assert.Equal(t, overview.TotalCount,
			overview.PriorityCounts.High+overview.PriorityCounts.Medium+overview.PriorityCounts.Low)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		_, err := svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Title:    "Office Hours",
			Type:     "meeting",
			Subject:  "Calculus I",
			Date:     "2025-04-06",
			Priority: models.PriorityLow,
		})
		require.NoError(t, err)

		_, err = svc.CommitDraft(ctx, sid)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Invalid, "type")
	})

	t.Run("blank type and priority take the form defaults", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		_, err := svc.OpenDraft(ctx, sid)
		require.NoError(t, err)
		_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{
			Title:   "Reading Week Prep",
			Subject: "World History",
			Date:    "2025-04-07",
		})
		require.NoError(t, err)

		event, err := svc.CommitDraft(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.EventAssignment, event.Type)
		assert.Equal(t, models.PriorityMedium, event.Priority)

		overview, err := svc.Overview(ctx, sid, "2025-04-01")
		require.NoError(t, err)
		assert.Equal(t, overview.TotalCount,
			overview.PriorityCounts.High+overview.PriorityCounts.Medium+overview.PriorityCounts.Low)
	})

	t.Run("commit while closed is a state conflict", func(t *testing.T) {
		svc, sid := setup(t)
		ctx := context.Background()

		_, err := svc.CommitDraft(ctx, sid)
		var serr *StateError
		require.ErrorAs(t, err, &serr)
	})
}

func TestCancelDraft(t *testing.T) {
	svc, sid := setup(t)
	ctx := context.Background()

	before, err := svc.Events(ctx, sid)
	require.NoError(t, err)

	_, err = svc.OpenDraft(ctx, sid)
	require.NoError(t, err)
	_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{Title: "Abandoned", Subject: "Math", Date: "2025-04-02"})
	require.NoError(t, err)
	require.NoError(t, svc.CancelDraft(ctx, sid))

	after, err := svc.Events(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Update after cancel is rejected, the dialog is closed.
	_, err = svc.UpdateDraft(ctx, sid, models.EventDraft{Title: "Late"})
	var serr *StateError
	require.ErrorAs(t, err, &serr)
}

func TestToggleComplete(t *testing.T) {
	svc, sid := setup(t)
	ctx := context.Background()

	events, err := svc.Events(ctx, sid)
	require.NoError(t, err)
	target := events[0]
	require.False(t, target.Completed)

	toggled, err := svc.ToggleComplete(ctx, sid, target.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	// Double-toggle returns the event to its original state.
	toggled, err = svc.ToggleComplete(ctx, sid, target.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	_, err = svc.ToggleComplete(ctx, sid, "no-such-event")
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestExportICS(t *testing.T) {
	svc, sid := setup(t)
	ctx := context.Background()

	doc, err := svc.ExportICS(ctx, sid)
	require.NoError(t, err)
	assert.Contains(t, doc, "BEGIN:VCALENDAR")
	assert.Contains(t, doc, "Mathematics Quiz")
	assert.Equal(t, len(SeedEvents()), strings.Count(doc, "BEGIN:VEVENT"))
}
