package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionNotFound is returned when a wizard session does not exist
	// or its TTL has elapsed.
	ErrSessionNotFound = errors.New("wizard session not found or expired")

	// ErrSubmissionInFlight is returned when a submit is attempted while a
	// previous submission is still running.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrNotReadyToSubmit is returned when submit is called before the
	// wizard has reached the confirmation step.
	ErrNotReadyToSubmit = errors.New("wizard has not reached the confirmation step")

	// ErrRoomNotInCatalog is returned when a selected room id cannot be
	// resolved against the catalog.
	ErrRoomNotInCatalog = errors.New("selected room not found in catalog")
)

// ValidationError reports the failing fields of the current step.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed at step %s: %s", e.Step, strings.Join(keys, ", "))
}
