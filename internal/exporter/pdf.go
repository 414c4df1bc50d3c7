package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tuanpmle/studyflow/internal/generator"
)

// writePDF renders the document as a PDF: bold centered title, a metadata
// line, then the body paragraphs. Exam documents get a numbered question
// layout with an answer key at the end.
func writePDF(doc *generator.Document, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	meta := fmt.Sprintf("Generated: %s | Model: %s",
		time.Now().Format("2006-01-02 15:04"), doc.Model)
	pdf.CellFormat(0, 8, tr(meta), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if doc.Kind == generator.KindExam && len(doc.Questions) > 0 {
		writeExamBody(pdf, tr, doc.Questions)
	} else {
		pdf.SetFont("Arial", "", 12)
		for _, line := range strings.Split(doc.Body, "\n") {
			pdf.MultiCell(0, 7, tr(line), "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeExamBody(pdf *fpdf.Fpdf, tr func(string) string, questions []generator.Question) {
	letters := []string{"A", "B", "C", "D"}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Instructions: %d questions", len(questions))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, q := range questions {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Question %d:", i+1)), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 7, tr(q.Question), "", "L", false)

		switch q.Type {
		case generator.QuestionTrueFalse:
			pdf.MultiCell(0, 7, tr("True / False"), "", "L", false)
		case generator.QuestionShortAnswer:
			pdf.MultiCell(0, 7, tr("Answer in 2-3 sentences."), "", "L", false)
		default:
			for n, opt := range q.Options {
				if n >= len(letters) {
					break
				}
				pdf.MultiCell(0, 7, tr(fmt.Sprintf("%s) %s", letters[n], opt)), "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Answer Key", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for i, q := range questions {
		answer := q.Answer
		if answer == "" {
			answer = "open answer"
		}
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("%d. %s", i+1, answer)), "", 1, "L", false, 0, "")
	}
}
