package acquire

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lukechampine.com/blake3"
)

// SaveUpload persists an uploaded audio stream into the uploads directory
// and normalizes it for transcription. The stored name is derived from the
// BLAKE3 hash of the content, so re-uploading the same file yields the same
// path instead of piling up duplicates.
func (a *implAcquirer) SaveUpload(ctx context.Context, filename string, r io.Reader) (*Artifact, error) {
	artifact, err := a.saveUpload(ctx, filename, r)
	if err != nil {
		return nil, &Error{Source: filename, Err: err}
	}
	return artifact, nil
}

func (a *implAcquirer) saveUpload(ctx context.Context, filename string, r io.Reader) (*Artifact, error) {
	if err := os.MkdirAll(a.cfg.Paths.Uploads, 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	tmp, err := os.CreateTemp(a.cfg.Paths.Uploads, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp upload: %w", err)
	}
	tmpPath := tmp.Name()

	hasher := blake3.New(32, nil)
	if _, err := io.Copy(io.MultiWriter(tmp, hasher), r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("close upload: %w", err)
	}

	hash := hex.EncodeToString(hasher.Sum(nil))
	rawPath := filepath.Join(a.cfg.Paths.Uploads, hash+filepath.Ext(filename))
	if err := os.Rename(tmpPath, rawPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("store upload: %w", err)
	}

	a.logger.Info(ctx, "Upload stored: %s (%s)", rawPath, filename)

	wavPath := filepath.Join(a.cfg.Paths.Uploads, hash+".wav")
	artifact, err := a.normalize(ctx, rawPath, wavPath)
	if err != nil {
		return nil, err
	}
	artifact.Source = filename
	artifact.Hash = hash

	// The raw container is no longer needed once the WAV exists.
	if rawPath != wavPath {
		if err := os.Remove(rawPath); err != nil {
			a.logger.Warn(ctx, "Failed to remove raw upload %s: %v", rawPath, err)
		}
	}

	return artifact, nil
}

// HashString returns the hex BLAKE3 hash of s. Used to derive stable file
// names for URL downloads.
func HashString(s string) string {
	sum := blake3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
