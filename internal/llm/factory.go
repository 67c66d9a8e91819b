package llm

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// NewProvider selects and constructs the configured backend, wrapped so its
// output is always scrubbed of thinking regions. Hosted vendors require an
// API key; without one, and for unknown provider names, the dummy backend
// is used. Ollama runs locally and needs no key.
func NewProvider(provider, apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) Provider {
	var opts []Option
	if baseURL != "" {
		opts = append(opts, WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	var inner Provider
	switch strings.ToLower(provider) {
	case "openai":
		if apiKey != "" {
			inner = NewOpenAIProvider(apiKey, model, opts...)
		}
	case "anthropic":
		if apiKey != "" {
			inner = NewAnthropicProvider(apiKey, model, opts...)
		}
	case "gemini":
		if apiKey != "" {
			inner = NewGeminiProvider(apiKey, model, opts...)
		}
	case "ollama":
		inner = NewOllamaProvider(model, opts...)
	}
	if inner == nil {
		inner = NewDummyProvider()
	}

	logger.Info("selected llm provider", "provider", inner.Name(), "model", model)
	return NewScrubbedProvider(inner)
}

// ScrubbedProvider wraps a Provider and removes thinking regions from its
// stream.
type ScrubbedProvider struct {
	inner Provider
}

// NewScrubbedProvider wraps the given backend.
func NewScrubbedProvider(inner Provider) *ScrubbedProvider {
	return &ScrubbedProvider{inner: inner}
}

// Name returns the wrapped provider's name.
func (p *ScrubbedProvider) Name() string { return p.inner.Name() }

// GenerateStream forwards the wrapped stream through a Scrubber.
func (p *ScrubbedProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		var scrubber Scrubber
		for chunk := range p.inner.GenerateStream(ctx, query, contextDocs, history) {
			// Synthetic error chunks are not model output; they bypass the
			// scrubber so they reach the client even when the stream died
			// inside a thinking region. Any withheld content is dropped.
			if IsErrorChunk(chunk) {
				emit(ctx, out, chunk)
				return
			}
			if clean := scrubber.Feed(chunk); clean != "" {
				if !emit(ctx, out, clean) {
					return
				}
			}
		}
		if tail := scrubber.Flush(); tail != "" {
			emit(ctx, out, tail)
		}
	}()

	return out
}

// Ensure ScrubbedProvider implements Provider.
var _ Provider = (*ScrubbedProvider)(nil)
