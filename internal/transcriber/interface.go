package transcriber

import "context"

// Segment is a time-aligned portion of a transcript.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
}

// Transcript is the ordered, immutable result of one transcription call.
type Transcript struct {
	Segments []Segment `json:"segments"`
	Language string    `json:"language,omitempty"`
}

// Transcriber converts an audio artifact into ordered transcript segments.
// modelSize selects the engine model: base, small or medium.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, modelSize string) (*Transcript, error)
}
