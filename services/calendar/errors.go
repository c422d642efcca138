package calendar

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEventNotFound is returned when no event matches the requested ID.
var ErrEventNotFound = errors.New("event not found")

// ValidationError reports the draft fields that blocked a commit. The
// presentation layer maps it to visible feedback instead of a silent no-op.
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

// StateError signals a draft operation attempted in the wrong dialog state,
// e.g. committing while the dialog is closed.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while draft is %s", e.Op, e.State)
}

func (e *StateError) HTTPStatus() int { return http.StatusConflict }
