package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultAnthropicBaseURL is the default Anthropic API endpoint.
const DefaultAnthropicBaseURL = "https://api.anthropic.com"

const anthropicVersion = "2023-06-01"

// AnthropicProvider streams messages from the Anthropic API.
type AnthropicProvider struct {
	apiKey string
	model  string
	opts   clientOptions
}

// NewAnthropicProvider creates a new Anthropic backend.
func NewAnthropicProvider(apiKey, model string, opts ...Option) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		opts:   applyOptions(DefaultAnthropicBaseURL, opts),
	}
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string { return "anthropic" }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float32            `json:"temperature"`
	MaxTokens   int                `json:"max_tokens"`
	Stream      bool               `json:"stream"`
}

type anthropicStreamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

// GenerateStream streams the completion. On any backend failure a single
// synthetic error chunk is emitted and the stream ends.
func (p *AnthropicProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		if err := p.stream(ctx, query, contextDocs, history, out); err != nil {
			emit(ctx, out, errorChunk("Anthropic", err))
		}
	}()

	return out
}

func (p *AnthropicProvider) stream(ctx context.Context, query string, contextDocs []string, history []Message, out chan<- string) error {
	var messages []anthropicMessage
	for _, h := range history {
		messages = append(messages, anthropicMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, anthropicMessage{Role: "user", Content: buildContextPrompt(query, contextDocs)})

	body, err := json.Marshal(anthropicRequest{
		Model:       p.model,
		System:      DefaultSystemPrompt,
		Messages:    messages,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		Stream:      true,
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.opts.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.opts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event anthropicStreamEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			return fmt.Errorf("parsing stream event: %w", err)
		}

		switch event.Type {
		case "content_block_delta":
			if event.Delta.Type != "text_delta" || event.Delta.Text == "" {
				continue
			}
			if !emit(ctx, out, event.Delta.Text) {
				return nil
			}
		case "message_stop":
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}

	return nil
}

// Ensure AnthropicProvider implements Provider.
var _ Provider = (*AnthropicProvider)(nil)
