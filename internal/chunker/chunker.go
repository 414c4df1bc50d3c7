// Package chunker splits transcript text into bounded-size chunks for the
// generation adapter, preferring sentence boundaries. Rejoining the chunks
// in order reproduces the input text exactly.
package chunker

import (
	"unicode"
	"unicode/utf8"
)

// Chunk is a bounded-length text slice with its position in the transcript.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Split cuts text into ordered chunks of at most maxChars bytes each,
// breaking at sentence ends where possible. A single sentence longer than
// maxChars is hard-split at the limit. maxChars <= 0 disables splitting.
func Split(text string, maxChars int) []Chunk {
	if text == "" {
		return nil
	}
	if maxChars <= 0 {
		return []Chunk{{Index: 0, Text: text}}
	}

	var chunks []Chunk
	current := ""

	flush := func() {
		if current != "" {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: current})
			current = ""
		}
	}

	for _, sentence := range sentences(text) {
		for _, piece := range hardSplit(sentence, maxChars) {
			if current != "" && len(current)+len(piece) > maxChars {
				flush()
			}
			current += piece
		}
	}
	flush()

	return chunks
}

// Join reverses Split.
func Join(chunks []Chunk) string {
	var out string
	for _, c := range chunks {
		out += c.Text
	}
	return out
}

// sentences partitions text into sentence-sized pieces. A sentence ends at
// a '.', '!' or '?' followed by whitespace; the trailing whitespace stays
// attached to the sentence so the pieces concatenate back to the input.
// Detection is best-effort: abbreviations followed by a space also cut.
func sentences(text string) []string {
	var out []string
	start := 0
	sawTerm := false
	afterEnd := false

	for i, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			sawTerm = true
		case unicode.IsSpace(r):
			if sawTerm {
				afterEnd = true
			}
		default:
			if afterEnd {
				out = append(out, text[start:i])
				start = i
			}
			sawTerm = false
			afterEnd = false
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}

	return out
}

// hardSplit cuts s into pieces of at most maxChars bytes on rune boundaries.
func hardSplit(s string, maxChars int) []string {
	if len(s) <= maxChars {
		return []string{s}
	}

	var out []string
	start := 0
	for start < len(s) {
		end := start
		for end < len(s) {
			_, size := utf8.DecodeRuneInString(s[end:])
			if end+size-start > maxChars && end > start {
				break
			}
			end += size
		}
		out = append(out, s[start:end])
		start = end
	}
	return out
}
