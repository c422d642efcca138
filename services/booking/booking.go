package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	tutorRepo "mentu/database/repository/tutor"
	"mentu/models"
	"mentu/session"
	"mentu/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Booking sessions are short-lived; an abandoned draft simply expires.
const sessionTTL = 10 * time.Minute

// DefaultBookingService keeps booking drafts in the session store, one per
// initiated booking dialog.
type DefaultBookingService struct {
	Tutors   tutorRepo.TutorRepository
	Sessions session.Store
}

func bookingKey(sessionID string) string {
	return "booking:" + sessionID
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	var bs models.BookingSession
	err := s.Sessions.Get(ctx, bookingKey(sessionID), &bs)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrBookingSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	return &bs, nil
}

func (s *DefaultBookingService) saveSession(ctx context.Context, bs *models.BookingSession) error {
	if err := s.Sessions.Set(ctx, bookingKey(bs.SessionID), bs, sessionTTL); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) Initiate(ctx context.Context, tutorID string) (*models.BookingSession, error) {
	t, err := s.Tutors.GetByID(tutorID)
	if err != nil {
		return nil, err
	}

	bs := models.BookingSession{
		SessionID: uuid.New().String(),
		TutorID:   t.ID,
		Draft: models.BookingDraft{
			Duration: 60,
			// The first declared type is always supported; "online" for every
			// seeded tutor, but never an unsupported default.
			SessionType: t.SessionTypes[0],
		},
	}
	if err := s.saveSession(ctx, &bs); err != nil {
		return nil, err
	}
	return &bs, nil
}

// validateDraft enforces the duration set and session-type membership. Date
// and time are only required at confirm time.
func (s *DefaultBookingService) validateDraft(t *models.Tutor, draft models.BookingDraft) *ValidationError {
	var verr ValidationError
	if !models.ValidBookingDuration(draft.Duration) {
		verr.Invalid = append(verr.Invalid, "duration")
	}
	if !t.OffersSessionType(draft.SessionType) {
		verr.Invalid = append(verr.Invalid, "sessionType")
	}
	if len(verr.Invalid) > 0 {
		return &verr
	}
	return nil
}

func (s *DefaultBookingService) Update(ctx context.Context, sessionID string, draft models.BookingDraft) (*models.BookingSession, error) {
	bs, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t, err := s.Tutors.GetByID(bs.TutorID)
	if err != nil {
		return nil, err
	}
	if verr := s.validateDraft(t, draft); verr != nil {
		return nil, verr
	}
	bs.Draft = draft
	if err := s.saveSession(ctx, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (s *DefaultBookingService) Quote(ctx context.Context, sessionID string) (*models.BookingQuote, error) {
	bs, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t, err := s.Tutors.GetByID(bs.TutorID)
	if err != nil {
		return nil, err
	}
	quote := ComputeQuote(t.HourlyRate, bs.Draft.Duration)
	return &quote, nil
}

func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	bs, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t, err := s.Tutors.GetByID(bs.TutorID)
	if err != nil {
		return nil, err
	}

	var verr ValidationError
	if bs.Draft.Date == "" {
		verr.Missing = append(verr.Missing, "date")
	}
	if bs.Draft.Time == "" {
		verr.Missing = append(verr.Missing, "time")
	}
	if len(verr.Missing) > 0 {
		// The session stays live so the client can fill the form and retry.
		return nil, &verr
	}

	quote := ComputeQuote(t.HourlyRate, bs.Draft.Duration)
	confirmation := models.BookingConfirmation{
		TutorID:   t.ID,
		TutorName: t.Name,
		Draft:     bs.Draft,
		Quote:     quote,
	}

	// No backend booking exists yet; the confirmed draft is logged and dropped.
	utils.GetLogger().Info("booking session confirmed",
		zap.String("sessionID", sessionID),
		zap.String("tutorID", t.ID),
		zap.String("date", bs.Draft.Date),
		zap.String("time", bs.Draft.Time),
		zap.Int("duration", bs.Draft.Duration),
		zap.String("sessionType", string(bs.Draft.SessionType)),
		zap.String("total", quote.Display),
	)

	if err := s.Sessions.Delete(ctx, bookingKey(sessionID)); err != nil {
		return nil, fmt.Errorf("failed to close booking session: %w", err)
	}
	return &confirmation, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, sessionID string) error {
	// Cancelling an already-expired session is fine; the outcome is the same.
	if err := s.Sessions.Delete(ctx, bookingKey(sessionID)); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}
