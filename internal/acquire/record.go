package acquire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Record captures audio from the default microphone for the given duration
// via ffmpeg's platform device input and stores it in the recordings
// directory as 16kHz mono WAV.
func (a *implAcquirer) Record(ctx context.Context, duration time.Duration) (*Artifact, error) {
	artifact, err := a.record(ctx, duration)
	if err != nil {
		return nil, &Error{Source: "microphone", Err: err}
	}
	return artifact, nil
}

func (a *implAcquirer) record(ctx context.Context, duration time.Duration) (*Artifact, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	if err := os.MkdirAll(a.cfg.Paths.Recordings, 0755); err != nil {
		return nil, fmt.Errorf("create recordings dir: %w", err)
	}

	outPath := filepath.Join(
		a.cfg.Paths.Recordings,
		fmt.Sprintf("recording_%s.wav", time.Now().Format("20060102_150405")),
	)

	format, device, err := captureDevice()
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "Recording %.0fs from %s device %q", duration.Seconds(), format, device)

	args := []string{
		"-f", format,
		"-i", device,
		"-t", fmt.Sprintf("%.0f", duration.Seconds()),
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	}

	if _, err := a.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return nil, fmt.Errorf("ffmpeg record: %w", err)
	}

	artifact, err := a.probe(ctx, outPath)
	if err != nil {
		return nil, err
	}
	artifact.Source = "microphone"
	artifact.Hash = HashString(outPath)

	a.logger.Info(ctx, "Recording saved: %s (%.1fs)", outPath, artifact.Duration)
	return artifact, nil
}

// captureDevice picks the ffmpeg input format and default device for the
// current platform.
func captureDevice() (format, device string, err error) {
	switch runtime.GOOS {
	case "linux":
		return "alsa", "default", nil
	case "darwin":
		return "avfoundation", ":0", nil
	case "windows":
		return "dshow", "audio=default", nil
	default:
		return "", "", fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
}
