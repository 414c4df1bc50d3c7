package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/logger"
)

const resultJSON = `{
	"result": {"language": "en"},
	"transcription": [
		{"offsets": {"from": 0, "to": 4200}, "text": " Welcome to the lecture."},
		{"offsets": {"from": 4200, "to": 9000}, "text": " Today we cover sorting."},
		{"offsets": {"from": 9000, "to": 9100}, "text": "  "}
	]
}`

// fakeExecutor simulates the whisper.cpp binary by writing the JSON result
// file next to the requested output prefix.
type fakeExecutor struct {
	result string
	err    error
	calls  int
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	var prefix string
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "--output-file" {
			prefix = args[i+1]
		}
	}
	if err := os.WriteFile(prefix+".json", []byte(f.result), 0644); err != nil {
		return "", err
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testSetup(t *testing.T) (*config.Config, string) {
	t.Helper()
	root := t.TempDir()

	modelDir := filepath.Join(root, "models")
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, size := range []string{"base", "small"} {
		if err := os.WriteFile(filepath.Join(modelDir, "ggml-"+size+".bin"), []byte("ggml"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	audioPath := filepath.Join(root, "lecture.wav")
	if err := os.WriteFile(audioPath, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			ModelDir:   modelDir,
			BinaryPath: "./whisper-cli",
			Language:   "en",
			ModelSize:  "base",
			Threads:    4,
		},
		Paths: config.PathsConfig{Temp: filepath.Join(root, "temp")},
	}
	return cfg, audioPath
}

func TestTranscribe(t *testing.T) {
	cfg, audioPath := testSetup(t)
	tr := New(cfg, &fakeExecutor{result: resultJSON}, logger.New("error", "text"))

	transcript, err := tr.Transcribe(context.Background(), audioPath, "base")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if len(transcript.Segments) != 2 {
		t.Fatalf("segments = %d, want 2 (blank segment dropped)", len(transcript.Segments))
	}
	if transcript.Segments[0].Start != 0 || transcript.Segments[0].End != 4.2 {
		t.Errorf("segment 0 times = %v-%v, want 0-4.2",
			transcript.Segments[0].Start, transcript.Segments[0].End)
	}
	if transcript.Segments[0].Text != "Welcome to the lecture." {
		t.Errorf("segment 0 text = %q", transcript.Segments[0].Text)
	}
	if transcript.Language != "en" {
		t.Errorf("language = %q, want en", transcript.Language)
	}
	if got := transcript.Text(); got != "Welcome to the lecture. Today we cover sorting." {
		t.Errorf("Text() = %q", got)
	}
	if transcript.Duration() != 9.0 {
		t.Errorf("Duration() = %v, want 9.0", transcript.Duration())
	}
}

func TestTranscribeMissingAudio(t *testing.T) {
	cfg, _ := testSetup(t)
	tr := New(cfg, &fakeExecutor{result: resultJSON}, logger.New("error", "text"))

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), "base")

	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *transcriber.Error", err)
	}
}

func TestTranscribeUnknownModelSize(t *testing.T) {
	cfg, audioPath := testSetup(t)
	tr := New(cfg, &fakeExecutor{result: resultJSON}, logger.New("error", "text"))

	if _, err := tr.Transcribe(context.Background(), audioPath, "gigantic"); err == nil {
		t.Error("Transcribe() with unknown model size should fail")
	}
}

func TestTranscribeMissingModelFile(t *testing.T) {
	cfg, audioPath := testSetup(t)
	tr := New(cfg, &fakeExecutor{result: resultJSON}, logger.New("error", "text"))

	// medium is a valid size but no ggml-medium.bin exists in the fixture
	if _, err := tr.Transcribe(context.Background(), audioPath, "medium"); err == nil {
		t.Error("Transcribe() with missing model file should fail")
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	cfg, audioPath := testSetup(t)
	exec := &fakeExecutor{err: errors.New("whisper crashed")}
	tr := New(cfg, exec, logger.New("error", "text"))

	_, err := tr.Transcribe(context.Background(), audioPath, "")

	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *transcriber.Error", err)
	}
	if exec.calls != 1 {
		t.Errorf("engine invoked %d times, want 1 (no retry)", exec.calls)
	}
}

func TestTranscribeDefaultModelSize(t *testing.T) {
	cfg, audioPath := testSetup(t)
	tr := New(cfg, &fakeExecutor{result: resultJSON}, logger.New("error", "text"))

	// Empty selector falls back to the configured default (base).
	if _, err := tr.Transcribe(context.Background(), audioPath, ""); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
}

func TestTranscribeNoSpeech(t *testing.T) {
	cfg, audioPath := testSetup(t)
	tr := New(cfg, &fakeExecutor{result: `{"result":{"language":"en"},"transcription":[]}`}, logger.New("error", "text"))

	if _, err := tr.Transcribe(context.Background(), audioPath, "base"); err == nil {
		t.Error("Transcribe() with empty result should fail")
	}
}
