package acquire

import (
	"context"
	"io"
	"time"
)

// Artifact describes one acquired audio file, normalized to 16kHz mono WAV.
type Artifact struct {
	Path       string  `json:"path"`
	Source     string  `json:"source"`
	Hash       string  `json:"hash"`
	SampleRate int     `json:"sample_rate"`
	Duration   float64 `json:"duration_seconds"`
}

// Acquirer obtains audio artifacts from the three supported sources.
type Acquirer interface {
	SaveUpload(ctx context.Context, filename string, r io.Reader) (*Artifact, error)
	Record(ctx context.Context, duration time.Duration) (*Artifact, error)
	FetchURL(ctx context.Context, url string) (*Artifact, error)
}
