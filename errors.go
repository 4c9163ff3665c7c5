package kassa

import "fmt"

// ValidationError reports malformed input to a ledger-mutating call.
// The call is rejected before any state change.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "invalid input: " + e.Msg }

// invalidf builds a ValidationError with a formatted message.
func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError reports a failed durable write after the in-memory
// mutation was already applied. The logical operation stands; the caller
// must treat it as "applied, not yet durable". The next successful flush
// will carry the unsaved change.
type PersistenceError struct {
	Record string // which persisted record failed, e.g. "sales"
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not persist %s: %v", e.Record, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// UpstreamFormatError reports an AI response that could not be parsed into
// actions. It always resolves to zero actions plus a user-visible message,
// never to a crash.
type UpstreamFormatError struct {
	Msg string
	Err error
}

func (e *UpstreamFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unusable assistant response: %s: %v", e.Msg, e.Err)
	}
	return "unusable assistant response: " + e.Msg
}

func (e *UpstreamFormatError) Unwrap() error { return e.Err }
