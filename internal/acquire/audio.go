package acquire

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// normalize converts any audio container to 16kHz mono PCM WAV, the format
// the transcription engine expects, and probes the result.
func (a *implAcquirer) normalize(ctx context.Context, srcPath, dstPath string) (*Artifact, error) {
	a.logger.Info(ctx, "Normalizing audio: %s", srcPath)

	// FFmpeg arguments for audio normalization
	// -vn: No video (audio only)
	// -ar 16000: Sample rate 16kHz (optimal for Whisper)
	// -ac 1: Mono channel (Whisper works best with mono)
	// -c:a pcm_s16le: PCM 16-bit little-endian format
	// -y: Overwrite output file if exists
	outPath := dstPath
	if srcPath == dstPath {
		outPath = dstPath + ".norm.wav"
	}

	args := []string{
		"-i", srcPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	}

	if _, err := a.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return nil, fmt.Errorf("ffmpeg normalize audio: %w", err)
	}

	if outPath != dstPath {
		if err := os.Rename(outPath, dstPath); err != nil {
			return nil, fmt.Errorf("replace normalized audio: %w", err)
		}
	}

	artifact, err := a.probe(ctx, dstPath)
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "Audio normalized: %s (%.1fs)", dstPath, artifact.Duration)
	return artifact, nil
}

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		SampleRate string `json:"sample_rate"`
	} `json:"streams"`
}

// probe reads duration and sample rate from the file via ffprobe.
func (a *implAcquirer) probe(ctx context.Context, path string) (*Artifact, error) {
	out, err := a.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var probed ffprobeOutput
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	artifact := &Artifact{Path: path}
	if probed.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
			artifact.Duration = d
		}
	}
	for _, s := range probed.Streams {
		if s.CodecType == "audio" && s.SampleRate != "" {
			if sr, err := strconv.Atoi(s.SampleRate); err == nil {
				artifact.SampleRate = sr
			}
			break
		}
	}

	return artifact, nil
}
