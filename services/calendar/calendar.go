package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentu/models"
	"mentu/session"
	"mentu/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCalendarService keeps each session's calendar state in the session
// store, seeding a fresh calendar on first touch.
type DefaultCalendarService struct {
	Sessions session.Store
	TTL      time.Duration
}

func stateKey(sessionID string) string {
	return "calendar:" + sessionID
}

// loadState fetches the session's calendar, seeding it if the session is new
// or expired.
func (s *DefaultCalendarService) loadState(ctx context.Context, sessionID string) (*models.CalendarState, error) {
	var state models.CalendarState
	err := s.Sessions.Get(ctx, stateKey(sessionID), &state)
	if errors.Is(err, session.ErrNotFound) {
		state = models.CalendarState{
			Events:     SeedEvents(),
			Draft:      models.NewEventDraft(),
			DraftState: models.DraftClosed,
		}
		if err := s.saveState(ctx, sessionID, &state); err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar state: %w", err)
	}
	return &state, nil
}

func (s *DefaultCalendarService) saveState(ctx context.Context, sessionID string, state *models.CalendarState) error {
	if err := s.Sessions.Set(ctx, stateKey(sessionID), state, s.TTL); err != nil {
		return fmt.Errorf("failed to store calendar state: %w", err)
	}
	return nil
}

func (s *DefaultCalendarService) Events(ctx context.Context, sessionID string) ([]models.CalendarEvent, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Events, nil
}

func (s *DefaultCalendarService) Overview(ctx context.Context, sessionID, today string) (*models.CalendarOverview, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	overview := BuildOverview(state.Events, today)
	return &overview, nil
}

func (s *DefaultCalendarService) ToggleComplete(ctx context.Context, sessionID, eventID string) (*models.CalendarEvent, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range state.Events {
		if state.Events[i].ID == eventID {
			state.Events[i].Completed = !state.Events[i].Completed
			if err := s.saveState(ctx, sessionID, state); err != nil {
				return nil, err
			}
			ev := state.Events[i]
			return &ev, nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *DefaultCalendarService) OpenDraft(ctx context.Context, sessionID string) (*models.EventDraft, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.DraftState == models.DraftOpen {
		return nil, &StateError{Op: "open draft", State: string(state.DraftState)}
	}
	state.Draft = models.NewEventDraft()
	state.DraftState = models.DraftOpen
	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	draft := state.Draft
	return &draft, nil
}

func (s *DefaultCalendarService) UpdateDraft(ctx context.Context, sessionID string, draft models.EventDraft) (*models.EventDraft, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.DraftState != models.DraftOpen {
		return nil, &StateError{Op: "update draft", State: string(state.DraftState)}
	}
	state.Draft = draft
	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &state.Draft, nil
}

// validateDraft checks the commit requirements: title, subject and date are
// mandatory, a present date must be a real calendar date, and type/priority
// must be known values when set. The UI's selects only send known values,
// but the HTTP surface has to enforce the enums itself.
func validateDraft(draft models.EventDraft) *ValidationError {
	var verr ValidationError
	if draft.Title == "" {
		verr.Missing = append(verr.Missing, "title")
	}
	if draft.Subject == "" {
		verr.Missing = append(verr.Missing, "subject")
	}
	if draft.Date == "" {
		verr.Missing = append(verr.Missing, "date")
	} else if _, err := time.Parse("2006-01-02", draft.Date); err != nil {
		verr.Invalid = append(verr.Invalid, "date")
	}
	if draft.Type != "" && !draft.Type.Valid() {
		verr.Invalid = append(verr.Invalid, "type")
	}
	if draft.Priority != "" && !draft.Priority.Valid() {
		verr.Invalid = append(verr.Invalid, "priority")
	}
	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return &verr
	}
	return nil
}

func (s *DefaultCalendarService) CommitDraft(ctx context.Context, sessionID string) (*models.CalendarEvent, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.DraftState != models.DraftOpen {
		return nil, &StateError{Op: "commit draft", State: string(state.DraftState)}
	}
	if verr := validateDraft(state.Draft); verr != nil {
		// The dialog stays open and the event list is untouched.
		return nil, verr
	}

	// Blank type/priority take the form's defaults, so every committed
	// event lands in exactly one priority bucket.
	eventType := state.Draft.Type
	if eventType == "" {
		eventType = models.EventAssignment
	}
	priority := state.Draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	event := models.CalendarEvent{
		ID:          uuid.New().String(),
		Title:       state.Draft.Title,
		Type:        eventType,
		Subject:     state.Draft.Subject,
		Date:        state.Draft.Date,
		Time:        state.Draft.Time,
		Priority:    priority,
		Description: state.Draft.Description,
	}
	state.Events = append(state.Events, event)
	state.Draft = models.NewEventDraft()
	state.DraftState = models.DraftCommitted
	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("calendar event added",
		zap.String("sessionID", sessionID),
		zap.String("eventID", event.ID),
		zap.String("title", event.Title),
		zap.String("date", event.Date),
	)
	return &event, nil
}

func (s *DefaultCalendarService) CancelDraft(ctx context.Context, sessionID string) error {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	if state.DraftState != models.DraftOpen {
		return &StateError{Op: "cancel draft", State: string(state.DraftState)}
	}
	state.Draft = models.NewEventDraft()
	state.DraftState = models.DraftClosed
	return s.saveState(ctx, sessionID, state)
}
