package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tuanpmle/studyflow/internal/acquire"
	"github.com/tuanpmle/studyflow/internal/chunker"
	"github.com/tuanpmle/studyflow/internal/exporter"
	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/store"
)

func (p *implPipeline) Process(ctx context.Context, artifact *acquire.Artifact, opts Options) (*store.Document, error) {
	if artifact == nil {
		return nil, fmt.Errorf("nil artifact")
	}

	kind := opts.Kind
	if kind == "" {
		kind = generator.KindNotes
	}
	format, err := exporter.ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}

	if err := p.semaphore.acquire(ctx); err != nil {
		return nil, fmt.Errorf("waiting for pipeline slot: %w", err)
	}
	defer p.semaphore.release()

	p.logger.Info(ctx, "Pipeline started: %s (%s -> %s)", artifact.Path, kind, format)
	started := time.Now()

	transcript, err := p.transcriber.Transcribe(ctx, artifact.Path, opts.ModelSize)
	if err != nil {
		return nil, err
	}
	text := transcript.Text()
	p.logger.Info(ctx, "Transcript ready: %d chars, %d segments", len(text), len(transcript.Segments))

	chunks := chunker.Split(text, p.cfg.Chunking.MaxChunkChars)

	doc, err := p.generator.Generate(ctx, chunks, kind, opts.Model)
	if err != nil {
		return nil, err
	}

	outputPath, err := p.exporter.Export(ctx, doc, format)
	if err != nil {
		return nil, err
	}

	record := store.Document{
		ID:              uuid.NewString(),
		Kind:            string(doc.Kind),
		Title:           doc.Title,
		Source:          artifact.Source,
		ArtifactHash:    artifact.Hash,
		TranscriptChars: len(text),
		OutputPath:      outputPath,
		Format:          string(format),
		CreatedAt:       time.Now().UTC(),
	}
	if err := p.store.InsertDocument(ctx, record); err != nil {
		return nil, err
	}

	p.archive(ctx, artifact.Path)

	p.logger.Info(ctx, "Pipeline completed in %s: %s (%s)",
		time.Since(started).Round(time.Millisecond), outputPath, record.ID)

	return &record, nil
}

func (p *implPipeline) ProcessFile(ctx context.Context, path string, opts Options) (*store.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	artifact, err := p.acquirer.SaveUpload(ctx, filepath.Base(path), f)
	f.Close()
	if err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to remove ingested file %s: %v", path, err)
	}

	return p.Process(ctx, artifact, opts)
}

// archive moves a processed artifact out of the working directory so it is
// not picked up again. Failure to archive never fails the run.
func (p *implPipeline) archive(ctx context.Context, path string) {
	dir := p.cfg.Paths.Archived
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		p.logger.Warn(ctx, "Failed to create archive directory %s: %v", dir, err)
		return
	}
	dst := filepath.Join(dir, filepath.Base(path))
	if err := os.Rename(path, dst); err != nil {
		p.logger.Warn(ctx, "Failed to archive artifact %s: %v", path, err)
		return
	}
	p.logger.Debug(ctx, "Artifact archived: %s", dst)
}
