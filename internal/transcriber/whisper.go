package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/logger"
	"github.com/tuanpmle/studyflow/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the whisper.cpp binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper.cpp on the audio file with JSON output and parses
// the ordered, timestamped segments.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, modelSize string) (*Transcript, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, &Error{Path: audioPath, Err: fmt.Errorf("audio file unreadable: %w", err)}
	}

	modelPath, err := t.resolveModel(modelSize)
	if err != nil {
		return nil, &Error{Path: audioPath, Err: err}
	}

	if err := os.MkdirAll(t.cfg.Paths.Temp, 0755); err != nil {
		return nil, &Error{Path: audioPath, Err: fmt.Errorf("create temp dir: %w", err)}
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outputPrefix := filepath.Join(t.cfg.Paths.Temp, base)

	t.logger.Info(ctx, "Transcribing %s with model %s (%d threads)",
		audioPath, modelSize, t.cfg.Whisper.Threads)

	// whisper.cpp arguments
	// -m: Model path
	// -f: Input audio file
	// -oj: Output JSON with per-segment offsets
	// -l: Force language (prevents hallucination)
	// -t: Number of threads
	// --output-file: Output file prefix (whisper appends .json)
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-oj",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, &Error{Path: audioPath, Err: fmt.Errorf("whisper: %w", err)}
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	transcript, err := parseResultFile(jsonPath)
	if err != nil {
		return nil, &Error{Path: audioPath, Err: err}
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, %.1fs",
		len(transcript.Segments), transcript.Duration())
	return transcript, nil
}

// resolveModel maps a model size selector to a ggml model file on disk.
func (t *implTranscriber) resolveModel(size string) (string, error) {
	switch size {
	case "":
		size = t.cfg.Whisper.ModelSize
	case "base", "small", "medium":
	default:
		return "", fmt.Errorf("unknown model size %q (want base, small or medium)", size)
	}

	path := filepath.Join(t.cfg.Whisper.ModelDir, fmt.Sprintf("ggml-%s.bin", size))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("model %s not found: %w", path, err)
	}
	return path, nil
}

// --- whisper.cpp JSON result types ---

type whisperResult struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []whisperSegment `json:"transcription"`
}

type whisperSegment struct {
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

// parseResultFile decodes the JSON file whisper.cpp writes next to its
// output prefix into ordered segments. Offsets are in milliseconds.
func parseResultFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open whisper result: %w", err)
	}
	defer f.Close()

	var res whisperResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode whisper result: %w", err)
	}

	transcript := &Transcript{
		Language: res.Result.Language,
		Segments: make([]Segment, 0, len(res.Transcription)),
	}
	for _, s := range res.Transcription {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		transcript.Segments = append(transcript.Segments, Segment{
			Start: float64(s.Offsets.From) / 1000,
			End:   float64(s.Offsets.To) / 1000,
			Text:  text,
		})
	}

	if len(transcript.Segments) == 0 {
		return nil, fmt.Errorf("no speech detected")
	}

	return transcript, nil
}
