package tokens

import (
	"strings"
	"testing"
)

// estimator uses the characters/4 fallback so counts are deterministic and
// independent of tokenizer data files.
func estimator() *Counter {
	return &Counter{}
}

func TestCountFallback(t *testing.T) {
	c := estimator()

	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abcd", 1},
		{strings.Repeat("a", 40), 10},
	}

	for _, tt := range tests {
		if got := c.Count(tt.text); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTruncateDocsKeepsOrder(t *testing.T) {
	c := estimator()

	// 10 tokens each under the fallback estimate.
	doc := strings.Repeat("a", 40)
	docs := []string{doc + "1", doc + "2", doc + "3"}

	got := c.TruncateDocs(docs, "", "", nil, 1000, 0)
	if len(got) != 3 {
		t.Fatalf("expected all docs, got %d", len(got))
	}
	for i, d := range docs {
		if got[i] != d {
			t.Errorf("doc %d out of order", i)
		}
	}
}

func TestTruncateDocsSkipsOversizedButKeepsLater(t *testing.T) {
	c := estimator()

	small := strings.Repeat("a", 40)   // 10 tokens
	large := strings.Repeat("b", 4000) // 1000 tokens

	// Budget: 100 - 50 slack = 50 tokens.
	got := c.TruncateDocs([]string{small, large, small}, "", "", nil, 100, 0)

	if len(got) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(got))
	}
	if got[0] != small || got[1] != small {
		t.Error("expected the two small docs, in order")
	}
}

func TestTruncateDocsExhaustedBudget(t *testing.T) {
	c := estimator()

	system := strings.Repeat("s", 400) // 100 tokens
	doc := strings.Repeat("a", 40)

	got := c.TruncateDocs([]string{doc}, system, "", nil, 100, 0)
	if got != nil {
		t.Errorf("expected nil with exhausted budget, got %v", got)
	}
}

func TestTruncateDocsAccountsForHistoryAndReserve(t *testing.T) {
	c := estimator()

	doc := strings.Repeat("a", 40) // 10 tokens
	history := []string{strings.Repeat("h", 400)}

	// 200 - 100 history - 40 reserve - 50 slack = 10 token budget.
	got := c.TruncateDocs([]string{doc, doc}, "", "", history, 200, 40)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 doc, got %d", len(got))
	}
}
