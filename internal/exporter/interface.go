package exporter

import (
	"context"
	"fmt"

	"github.com/tuanpmle/studyflow/internal/generator"
)

// Format selects the rendered output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat validates a format string; empty defaults to PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatPDF, nil
	case FormatPDF, FormatDOCX:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Exporter renders a generated document to a file and returns its path.
type Exporter interface {
	Export(ctx context.Context, doc *generator.Document, format Format) (string, error)
}

// Error reports a failed export: rendering or filesystem write failure.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export failed: %v", e.Err)
	}
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
