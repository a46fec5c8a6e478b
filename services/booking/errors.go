package booking

import "fmt"

// SubmitError carries a stable code alongside the human-readable message so
// handlers can map failures to HTTP statuses.
type SubmitError struct {
	Code    string
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newSubmitError(code, msg string) error {
	return &SubmitError{Code: code, Message: msg}
}
