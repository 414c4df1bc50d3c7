package pipeline

import (
	"context"

	"github.com/tuanpmle/studyflow/internal/acquire"
	"github.com/tuanpmle/studyflow/internal/exporter"
	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/store"
)

// Options selects what one pipeline run should produce.
type Options struct {
	Kind      generator.DocumentKind
	Format    exporter.Format
	ModelSize string // transcription model selector, empty for default
	Model     string // generation model, empty for default
}

// DocumentStore persists the record of a completed pipeline run.
type DocumentStore interface {
	InsertDocument(ctx context.Context, d store.Document) error
}

// Pipeline runs acquisition output through transcription, chunking,
// generation and export in one blocking invocation.
type Pipeline interface {
	// Process runs the full pipeline for one acquired artifact.
	Process(ctx context.Context, artifact *acquire.Artifact, opts Options) (*store.Document, error)
	// ProcessFile ingests a local audio file (normalizing it first) and
	// runs the full pipeline. The original file is removed on success.
	ProcessFile(ctx context.Context, path string, opts Options) (*store.Document, error)
}
