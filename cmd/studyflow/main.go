package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tuanpmle/studyflow/internal/acquire"
	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/exporter"
	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/logger"
	"github.com/tuanpmle/studyflow/internal/pipeline"
	"github.com/tuanpmle/studyflow/internal/server"
	"github.com/tuanpmle/studyflow/internal/store"
	"github.com/tuanpmle/studyflow/internal/transcriber"
	"github.com/tuanpmle/studyflow/internal/watcher"
	"github.com/tuanpmle/studyflow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; real environment wins either way
	_ = godotenv.Load()

	configPath := os.Getenv("STUDYFLOW_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "StudyFlow starting")
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Max concurrent pipelines: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	st, err := store.Open(filepath.Join(cfg.Paths.Data, "studyflow.db"))
	if err != nil {
		log.Error(ctx, "Failed to open document store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	for _, tool := range []string{"ffmpeg", "ffprobe", "yt-dlp"} {
		if !executor.LookPath(tool) {
			log.Warn(ctx, "%s not found on PATH; features depending on it will fail", tool)
		}
	}

	exec := executor.New()
	acq := acquire.New(cfg, exec, log)
	tr := transcriber.New(cfg, exec, log)
	gen := generator.New(cfg.Ollama, log)
	exp := exporter.New(cfg.Paths.PDFs, log)
	p := pipeline.New(cfg, acq, tr, gen, exp, st, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Ollama.PullOnStart {
		go func() {
			if err := gen.Pull(ctx, cfg.Ollama.Model); err != nil {
				log.Warn(ctx, "Model pull of %s failed: %v", cfg.Ollama.Model, err)
			}
		}()
	}

	// Audio dropped into the inbox runs the default pipeline
	w, err := watcher.New(cfg.Paths.Inbox, func(ctx context.Context, path string) error {
		_, err := p.ProcessFile(ctx, path, pipeline.Options{})
		return err
	}, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	srv := server.New(cfg, acq, p, st, gen, log)
	if err := srv.Start(ctx); err != nil {
		log.Error(ctx, "Failed to start server: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "StudyFlow is ready")
	log.Info(ctx, "Listening on %s, inbox: %s, output: %s",
		cfg.Server.Addr, cfg.Paths.Inbox, cfg.Paths.PDFs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully")
	if err := srv.Stop(ctx); err != nil {
		log.Error(ctx, "Server shutdown error: %v", err)
	}
	cancel()

	log.Info(ctx, "StudyFlow stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Uploads,
		cfg.Paths.Recordings,
		cfg.Paths.Downloads,
		cfg.Paths.PDFs,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
		cfg.Paths.Data,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
