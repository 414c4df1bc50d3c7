package chunker

import (
	"strings"
	"testing"
)

func TestSplitRejoinsExactly(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
	}{
		{"plain sentences", "First sentence. Second sentence. Third one here.", 20},
		{"questions and exclamations", "Really? Yes! Definitely. Sure thing.", 12},
		{"no terminators", "a stream of words with no punctuation at all", 10},
		{"trailing whitespace", "One. Two. Three.  \n", 8},
		{"decimal numbers stay whole", "Pi is roughly 3.14159 and e is 2.71828. Both are irrational.", 45},
		{"unicode text", "Längerer Satz über Akustik. Noch einer hier. Schluß.", 25},
		{"tiny limit", "Alpha beta gamma delta.", 4},
		{"limit larger than text", "Short.", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, tt.maxChars)
			if got := Join(chunks); got != tt.text {
				t.Errorf("rejoined text differs:\ngot  %q\nwant %q", got, tt.text)
			}
			for i, c := range chunks {
				if c.Index != i {
					t.Errorf("chunk %d has index %d", i, c.Index)
				}
				if c.Text == "" {
					t.Errorf("chunk %d is empty", i)
				}
			}
		})
	}
}

func TestSplitPrefersSentenceEnds(t *testing.T) {
	text := "One two three. Four five six. Seven eight nine."
	chunks := Split(text, 30)

	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2", len(chunks))
	}
	if chunks[0].Text != "One two three. Four five six. " {
		t.Errorf("chunk 0 = %q", chunks[0].Text)
	}
	if chunks[1].Text != "Seven eight nine." {
		t.Errorf("chunk 1 = %q", chunks[1].Text)
	}
}

func TestSplitBoundsChunkSize(t *testing.T) {
	text := strings.Repeat("word ", 200) + "end."
	maxChars := 64

	for _, c := range Split(text, maxChars) {
		if len(c.Text) > maxChars {
			t.Errorf("chunk %d length %d exceeds %d", c.Index, len(c.Text), maxChars)
		}
	}
}

func TestSplitOversizedSentence(t *testing.T) {
	// Single sentence far beyond the limit must be hard-split, not dropped.
	text := strings.Repeat("x", 100) + "."
	chunks := Split(text, 32)

	if len(chunks) < 3 {
		t.Fatalf("chunks = %d, want >= 3", len(chunks))
	}
	if got := Join(chunks); got != text {
		t.Errorf("rejoined text differs from input")
	}
}

func TestSplitHardSplitKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("ü", 50)
	for _, c := range Split(text, 7) {
		if !strings.HasPrefix(c.Text, "ü") {
			t.Fatalf("chunk %q starts mid-rune", c.Text)
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	if chunks := Split("", 100); chunks != nil {
		t.Errorf("Split(\"\") = %v, want nil", chunks)
	}
}

func TestSplitNoLimit(t *testing.T) {
	text := "Everything. In. One. Chunk."
	chunks := Split(text, 0)

	if len(chunks) != 1 || chunks[0].Text != text {
		t.Errorf("Split with no limit = %v, want single chunk", chunks)
	}
}
