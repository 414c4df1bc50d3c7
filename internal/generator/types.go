package generator

import (
	"context"
	"fmt"

	"github.com/tuanpmle/studyflow/internal/chunker"
)

// DocumentKind tags what the generation adapter produced.
type DocumentKind string

const (
	KindNotes      DocumentKind = "notes"
	KindSummary    DocumentKind = "summary"
	KindStudyGuide DocumentKind = "study-guide"
	KindExam       DocumentKind = "exam"
)

// ParseKind validates a document kind string.
func ParseKind(s string) (DocumentKind, error) {
	switch DocumentKind(s) {
	case KindNotes, KindSummary, KindStudyGuide, KindExam:
		return DocumentKind(s), nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

// Title returns the human-readable document title for the kind.
func (k DocumentKind) Title() string {
	switch k {
	case KindNotes:
		return "Study Notes"
	case KindSummary:
		return "Summary"
	case KindStudyGuide:
		return "Study Guide"
	case KindExam:
		return "Practice Exam"
	}
	return string(k)
}

// Question types of an exam document.
const (
	QuestionMCQ         = "mcq"
	QuestionTrueFalse   = "true_false"
	QuestionShortAnswer = "short_answer"
)

// Question is one parsed exam question. Options is populated for MCQ only;
// Answer is empty for short-answer questions.
type Question struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer,omitempty"`
}

// Document is the immutable output of the generation adapter.
type Document struct {
	Kind  DocumentKind `json:"kind"`
	Title string       `json:"title"`
	Body  string       `json:"body"`
	Model string       `json:"model"`
	// Questions is populated for exam documents only.
	Questions []Question `json:"questions,omitempty"`
}

// Generator turns transcript chunks into a generated document.
type Generator interface {
	Generate(ctx context.Context, chunks []chunker.Chunk, kind DocumentKind, model string) (*Document, error)
	IsAvailable(ctx context.Context) bool
	Pull(ctx context.Context, model string) error
}
