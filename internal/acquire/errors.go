package acquire

import "fmt"

// Error reports a failed acquisition and names its source (upload filename,
// URL or microphone).
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("acquiring audio from %s failed: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
