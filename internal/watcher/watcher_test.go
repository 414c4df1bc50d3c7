package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tuanpmle/studyflow/internal/logger"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lecture.wav", true},
		{"lecture.mp3", true},
		{"LECTURE.MP3", true},
		{"lecture.m4a", true},
		{"lecture.flac", true},
		{"notes.txt", false},
		{"lecture.mp4", false},
		{"noext", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isAudioFile(tt.path); got != tt.want {
			t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDetectsNewAudio(t *testing.T) {
	dir := t.TempDir()

	got := make(chan string, 1)
	handler := func(_ context.Context, path string) error {
		got <- path
		return nil
	}

	w, err := New(dir, handler, logger.New("error", "text"), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.(*implWatcher).settleDelay = 0
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	path := filepath.Join(dir, "lecture.wav")
	if err := os.WriteFile(path, []byte("riff"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-got:
		if p != path {
			t.Errorf("handler received %q, want %q", p, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("handler was not invoked for new audio file")
	}
}

func TestWatcherIgnoresNonAudio(t *testing.T) {
	dir := t.TempDir()

	got := make(chan string, 1)
	handler := func(_ context.Context, path string) error {
		got <- path
		return nil
	}

	w, err := New(dir, handler, logger.New("error", "text"), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.(*implWatcher).settleDelay = 0
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-got:
		t.Fatalf("handler invoked for non-audio file %q", p)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New("/does/not/exist", func(context.Context, string) error { return nil },
		logger.New("error", "text"), 1)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
