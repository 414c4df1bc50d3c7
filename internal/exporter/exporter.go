package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/logger"
)

type implExporter struct {
	outputDir string
	logger    logger.Logger
}

// New creates an Exporter writing into outputDir.
func New(outputDir string, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: outputDir,
		logger:    log,
	}
}

// Export renders the document into the output directory. A document with an
// empty body is rejected so the result file is never empty.
func (e *implExporter) Export(ctx context.Context, doc *generator.Document, format Format) (string, error) {
	if doc == nil || doc.Body == "" {
		return "", &Error{Err: fmt.Errorf("document is empty")}
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", &Error{Err: fmt.Errorf("create output dir: %w", err)}
	}

	name := fmt.Sprintf("%s_%s.%s", doc.Kind, time.Now().Format("20060102_150405"), format)
	outPath := filepath.Join(e.outputDir, name)

	var err error
	switch format {
	case FormatDOCX:
		err = writeDocx(doc, outPath)
	default:
		err = writePDF(doc, outPath)
	}
	if err != nil {
		return "", &Error{Path: outPath, Err: err}
	}

	e.logger.Info(ctx, "Exported %s: %s", doc.Kind, outPath)
	return outPath, nil
}
