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

// DefaultOpenAIBaseURL is the default OpenAI API endpoint.
const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider streams chat completions from the OpenAI API, or any
// OpenAI-compatible endpoint via WithBaseURL.
type OpenAIProvider struct {
	apiKey string
	model  string
	opts   clientOptions
}

// NewOpenAIProvider creates a new OpenAI backend.
func NewOpenAIProvider(apiKey, model string, opts ...Option) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		opts:   applyOptions(DefaultOpenAIBaseURL, opts),
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float32         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
	Stream      bool            `json:"stream"`
}

type openaiStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// GenerateStream streams the completion. On any backend failure a single
// synthetic error chunk is emitted and the stream ends.
func (p *OpenAIProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		if err := p.stream(ctx, query, contextDocs, history, out); err != nil {
			emit(ctx, out, errorChunk("OpenAI", err))
		}
	}()

	return out
}

func (p *OpenAIProvider) stream(ctx context.Context, query string, contextDocs []string, history []Message, out chan<- string) error {
	messages := []openaiMessage{{Role: "system", Content: DefaultSystemPrompt}}
	for _, h := range history {
		messages = append(messages, openaiMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, openaiMessage{Role: "user", Content: buildContextPrompt(query, contextDocs)})

	body, err := json.Marshal(openaiRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		Stream:      true,
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.opts.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.opts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			return nil
		}

		var chunk openaiStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("parsing stream chunk: %w", err)
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		if !emit(ctx, out, chunk.Choices[0].Delta.Content) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}

	return nil
}

// Ensure OpenAIProvider implements Provider.
var _ Provider = (*OpenAIProvider)(nil)
