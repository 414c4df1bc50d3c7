package acquire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FetchURL downloads best-audio from a remote URL via yt-dlp into the
// downloads directory, then normalizes it for transcription. The file name
// is derived from a hash of the URL so repeated fetches of the same page
// land on the same path.
func (a *implAcquirer) FetchURL(ctx context.Context, url string) (*Artifact, error) {
	if url == "" {
		return nil, &Error{Source: "url", Err: fmt.Errorf("url is required")}
	}

	artifact, err := a.fetchURL(ctx, url)
	if err != nil {
		return nil, &Error{Source: url, Err: err}
	}
	return artifact, nil
}

func (a *implAcquirer) fetchURL(ctx context.Context, url string) (*Artifact, error) {

	if err := os.MkdirAll(a.cfg.Paths.Downloads, 0755); err != nil {
		return nil, fmt.Errorf("create downloads dir: %w", err)
	}

	hash := HashString(url)
	rawPath := filepath.Join(a.cfg.Paths.Downloads, fmt.Sprintf("audio_%s_raw.wav", hash))

	a.logger.Info(ctx, "Fetching audio from URL: %s", url)

	// yt-dlp arguments
	// --no-playlist: single item even for playlist URLs
	// -f bestaudio/best: prefer the audio-only stream
	// --extract-audio --audio-format wav: FFmpeg post-processing to WAV,
	// which replaces the template's %(ext)s with .wav
	args := []string{
		"--no-playlist",
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "wav",
		"-o", fmt.Sprintf("audio_%s_raw.%%(ext)s", hash),
		url,
	}

	if _, err := a.executor.ExecuteInDir(ctx, a.cfg.Paths.Downloads, "yt-dlp", args...); err != nil {
		return nil, fmt.Errorf("yt-dlp fetch: %w", err)
	}

	if _, err := os.Stat(rawPath); err != nil {
		return nil, fmt.Errorf("downloaded file missing: %w", err)
	}

	wavPath := filepath.Join(a.cfg.Paths.Downloads, fmt.Sprintf("audio_%s.wav", hash))
	artifact, err := a.normalize(ctx, rawPath, wavPath)
	if err != nil {
		return nil, err
	}
	artifact.Source = url
	artifact.Hash = hash

	if err := os.Remove(rawPath); err != nil {
		a.logger.Warn(ctx, "Failed to remove raw download %s: %v", rawPath, err)
	}

	return artifact, nil
}
