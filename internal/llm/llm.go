// Package llm provides streaming text generation over multiple vendor
// backends behind a single contract.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// DefaultSystemPrompt constrains the model to answer from the provided
// context only.
const DefaultSystemPrompt = "You are a helpful and precise AI assistant. " +
	"Your task is to answer the user's question based ONLY on the provided context. " +
	"If the answer is not present in the context, state that you do not have enough information. " +
	"Do not fabricate information or use outside knowledge unless explicitly asked."

const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 1024
)

// Message is one turn of conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider generates a streaming answer from a query, retrieved context
// documents, and prior conversation turns.
//
// The returned channel is closed when generation ends. Backend failures are
// not surfaced as errors: the stream carries exactly one synthetic error
// chunk and ends. Callers detect it with IsErrorChunk when they need to
// distinguish failure from success.
type Provider interface {
	GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string
	Name() string
}

// buildContextPrompt joins the context documents and wraps them with the
// question. Shared by all backends.
func buildContextPrompt(query string, contextDocs []string) string {
	contextStr := strings.Join(contextDocs, "\n\n---\n\n")
	return fmt.Sprintf(
		"Please answer the question based on the following context:\n\nCONTEXT:\n%s\n\nQUESTION: %s",
		contextStr, query)
}

const errorChunkPrefix = "Error generating response ("

// errorChunk formats the single synthetic chunk emitted when a backend fails.
func errorChunk(vendor string, err error) string {
	return fmt.Sprintf("%s%s): %v", errorChunkPrefix, vendor, err)
}

// IsErrorChunk reports whether a chunk is a synthetic backend error.
func IsErrorChunk(chunk string) bool {
	return strings.HasPrefix(chunk, errorChunkPrefix)
}

// emit sends a chunk unless the context is cancelled first. It reports
// whether the send happened.
func emit(ctx context.Context, out chan<- string, chunk string) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// clientOptions holds transport settings shared by the vendor backends.
type clientOptions struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a vendor backend.
type Option func(*clientOptions)

// WithBaseURL overrides the vendor API base URL.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		o.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

func applyOptions(defaultBaseURL string, opts []Option) clientOptions {
	o := clientOptions{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
