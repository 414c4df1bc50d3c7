package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuanpmle/studyflow/internal/chunker"
)

// Generate runs the prompt template for kind over every chunk in order and
// assembles the results into one document. Exam output is additionally
// parsed into structured questions. No retries: a failed chunk fails the
// whole call.
func (g *implGenerator) Generate(ctx context.Context, chunks []chunker.Chunk, kind DocumentKind, model string) (*Document, error) {
	if len(chunks) == 0 {
		return nil, &Error{Kind: kind, Err: fmt.Errorf("no chunks to process")}
	}
	if model == "" {
		model = g.cfg.Model
	}

	template, temperature := promptFor(kind)

	var sections []string
	for _, chunk := range chunks {
		g.logger.Debug(ctx, "Generating %s for chunk %d/%d", kind, chunk.Index+1, len(chunks))

		prompt := fmt.Sprintf(template, strings.TrimSpace(chunk.Text))
		text, err := g.complete(ctx, model, prompt, temperature)
		if err != nil {
			return nil, &Error{Kind: kind, Err: fmt.Errorf("chunk %d: %w", chunk.Index, err)}
		}
		sections = append(sections, text)
	}

	doc := &Document{
		Kind:  kind,
		Title: kind.Title(),
		Body:  strings.Join(sections, "\n\n"),
		Model: model,
	}

	if kind == KindExam {
		questions := parseQuestions(doc.Body)
		if len(questions) == 0 {
			return nil, &Error{Kind: kind, Err: fmt.Errorf("malformed exam output: no parseable questions")}
		}
		doc.Questions = questions
	}

	g.logger.Info(ctx, "Generated %s: %d chars from %d chunks", kind, len(doc.Body), len(chunks))
	return doc, nil
}

// parseQuestions extracts exam questions from raw model output in the
// formats the exam prompt requests: "Q:" multiple choice with A)..D) options
// and a letter answer, "T/F:" statements with a True/False answer, and "SA:"
// short answer questions. Malformed questions are dropped.
func parseQuestions(text string) []Question {
	var questions []Question
	var current *Question

	flush := func() {
		if current != nil && wellFormed(*current) {
			questions = append(questions, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Q:"):
			flush()
			current = &Question{Type: QuestionMCQ, Question: strings.TrimSpace(line[2:])}
		case strings.HasPrefix(line, "T/F:"):
			flush()
			current = &Question{Type: QuestionTrueFalse, Question: strings.TrimSpace(line[4:])}
		case strings.HasPrefix(line, "SA:"):
			flush()
			current = &Question{Type: QuestionShortAnswer, Question: strings.TrimSpace(line[3:])}
		case current != nil && current.Type == QuestionMCQ && len(line) > 2 && isOptionPrefix(line[:2]):
			current.Options = append(current.Options, strings.TrimSpace(line[2:]))
		case current != nil && strings.HasPrefix(line, "Answer:"):
			answer := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "Answer:")))
			if current.Type == QuestionTrueFalse {
				if strings.Contains(answer, "TRUE") {
					answer = "True"
				} else {
					answer = "False"
				}
			}
			current.Answer = answer
		}
	}
	flush()

	return questions
}

func wellFormed(q Question) bool {
	if q.Question == "" {
		return false
	}
	switch q.Type {
	case QuestionMCQ:
		return len(q.Options) == 4 && validLetter(q.Answer)
	case QuestionTrueFalse:
		return q.Answer == "True" || q.Answer == "False"
	case QuestionShortAnswer:
		return true
	}
	return false
}

func isOptionPrefix(s string) bool {
	switch s {
	case "A)", "B)", "C)", "D)":
		return true
	}
	return false
}

func validLetter(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
