package generator

import "fmt"

// Error reports a failed generation call: server unreachable, non-OK status
// or malformed output. It is surfaced to the caller for manual retry, never
// retried automatically.
type Error struct {
	Kind DocumentKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation of %s failed: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
