package llm

import (
	"context"
	"fmt"
)

// DummyProvider emits a fixed placeholder instead of calling a model. It is
// selected when no API key is configured and for unknown provider names.
type DummyProvider struct{}

// NewDummyProvider creates the placeholder backend.
func NewDummyProvider() *DummyProvider {
	return &DummyProvider{}
}

// Name returns the provider name.
func (p *DummyProvider) Name() string { return "dummy" }

// GenerateStream emits a single placeholder chunk.
func (p *DummyProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string {
	out := make(chan string, 1)

	go func() {
		defer close(out)
		emit(ctx, out, fmt.Sprintf(
			"🤖 [DUMMY AI]: Received the question '%s'.\n"+
				"📚 Number of Context Documents Used: %d\n"+
				"⚠️ No real model is connected. Please configure the LLM_PROVIDER setting.",
			query, len(contextDocs)))
	}()

	return out
}

// Ensure DummyProvider implements Provider.
var _ Provider = (*DummyProvider)(nil)
