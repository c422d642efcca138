package booking

import (
	"errors"
	"net/http"
	"strings"
)

// ErrBookingSessionNotFound is returned when a booking session is absent or
// has expired out of the session store.
var ErrBookingSessionNotFound = errors.New("booking session not found or expired")

// ValidationError reports the booking draft fields that blocked an operation.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPStatus() int { return http.StatusUnprocessableEntity }
