// Package tokens estimates token counts and fits retrieved documents into a
// model's context window.
package tokens

import (
	"github.com/pkoukk/tiktoken-go"
)

// budgetSlack is subtracted from every budget to absorb per-message
// formatting overhead the tokenizer cannot see.
const budgetSlack = 50

// Counter counts tokens for a model. When no encoding is available for the
// model it falls back to cl100k_base, and failing that to a characters/4
// estimate, so counting never fails.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter creates a Counter for the given model name.
func NewCounter(model string) *Counter {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			enc = nil
		}
	}
	return &Counter{enc: enc}
}

// Count returns the token count of text.
func (c *Counter) Count(text string) int {
	if c.enc == nil {
		return len(text) / 4
	}
	return len(c.enc.Encode(text, nil, nil))
}

// countAll sums the token counts of all texts.
func (c *Counter) countAll(texts []string) int {
	total := 0
	for _, t := range texts {
		total += c.Count(t)
	}
	return total
}

// TruncateDocs selects documents that fit the remaining context budget:
// max context minus the system prompt, query, history, and reserved output
// tokens. Selection is greedy in input order; a document that does not fit
// is skipped, and smaller documents after it may still be taken.
func (c *Counter) TruncateDocs(docs []string, systemPrompt, query string, history []string, maxContext, reserveOutput int) []string {
	budget := maxContext - c.Count(systemPrompt) - c.Count(query) - c.countAll(history) - reserveOutput - budgetSlack
	if budget <= 0 {
		return nil
	}

	var selected []string
	used := 0
	for _, doc := range docs {
		n := c.Count(doc)
		if used+n > budget {
			continue
		}
		selected = append(selected, doc)
		used += n
	}
	return selected
}
