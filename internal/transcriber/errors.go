package transcriber

import "fmt"

// Error reports a failed transcription. The pipeline never retries it.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcription of %s failed: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
