package exporter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/logger"
)

func testDoc() *generator.Document {
	return &generator.Document{
		Kind:  generator.KindNotes,
		Title: "Study Notes",
		Model: "mistral",
		Body:  "## Key Topics\n- Sorting\n- **Complexity** analysis\n\nPlain paragraph.",
	}
}

func TestExportPDFNonEmpty(t *testing.T) {
	e := New(t.TempDir(), logger.New("error", "text"))

	path, err := e.Export(context.Background(), testDoc(), FormatPDF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if filepath.Ext(path) != ".pdf" {
		t.Errorf("path = %v, want .pdf", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}

func TestExportDOCXNonEmpty(t *testing.T) {
	e := New(t.TempDir(), logger.New("error", "text"))

	path, err := e.Export(context.Background(), testDoc(), FormatDOCX)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if filepath.Ext(path) != ".docx" {
		t.Errorf("path = %v, want .docx", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported DOCX is empty")
	}
}

func TestExportExamLayout(t *testing.T) {
	e := New(t.TempDir(), logger.New("error", "text"))

	doc := &generator.Document{
		Kind:  generator.KindExam,
		Title: "Practice Exam",
		Model: "mistral",
		Body:  "raw exam text",
		Questions: []generator.Question{
			{
				Type:     generator.QuestionMCQ,
				Question: "What is the time complexity of merge sort?",
				Options:  []string{"O(n log n)", "O(n^2)", "O(log n)", "O(n)"},
				Answer:   "A",
			},
			{
				Type:     generator.QuestionTrueFalse,
				Question: "Merge sort is stable.",
				Answer:   "True",
			},
			{
				Type:     generator.QuestionShortAnswer,
				Question: "Explain the divide step of merge sort.",
			},
		},
	}

	path, err := e.Export(context.Background(), doc, FormatPDF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("exported exam PDF is empty")
	}
	if !strings.Contains(filepath.Base(path), "exam") {
		t.Errorf("file name %v does not carry the document kind", path)
	}
}

func TestExportEmptyDocument(t *testing.T) {
	e := New(t.TempDir(), logger.New("error", "text"))

	_, err := e.Export(context.Background(), &generator.Document{Kind: generator.KindNotes}, FormatPDF)

	var xerr *Error
	if !errors.As(err, &xerr) {
		t.Fatalf("error = %v, want *exporter.Error", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPDF, false},
		{"pdf", FormatPDF, false},
		{"docx", FormatDOCX, false},
		{"epub", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
