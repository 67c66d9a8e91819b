package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultOllamaBaseURL is the default Ollama API endpoint.
const DefaultOllamaBaseURL = "http://localhost:11434"

// OllamaProvider streams chat completions from a local Ollama server. Unlike
// the hosted vendors it needs no API key.
type OllamaProvider struct {
	model string
	opts  clientOptions
}

// NewOllamaProvider creates a new Ollama backend.
func NewOllamaProvider(model string, opts ...Option) *OllamaProvider {
	return &OllamaProvider{
		model: model,
		opts:  applyOptions(DefaultOllamaBaseURL, opts),
	}
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  map[string]any  `json:"options,omitempty"`
}

// ollamaStreamChunk is one line of the NDJSON response from /api/chat.
type ollamaStreamChunk struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Done bool `json:"done"`
}

// GenerateStream streams the completion. On any backend failure a single
// synthetic error chunk is emitted and the stream ends.
func (p *OllamaProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		if err := p.stream(ctx, query, contextDocs, history, out); err != nil {
			emit(ctx, out, errorChunk("Ollama", err))
		}
	}()

	return out
}

func (p *OllamaProvider) stream(ctx context.Context, query string, contextDocs []string, history []Message, out chan<- string) error {
	messages := []ollamaMessage{{Role: "system", Content: DefaultSystemPrompt}}
	for _, h := range history {
		messages = append(messages, ollamaMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, ollamaMessage{Role: "user", Content: buildContextPrompt(query, contextDocs)})

	body, err := json.Marshal(ollamaRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   true,
		Options: map[string]any{
			"temperature": defaultTemperature,
			"num_predict": defaultMaxTokens,
		},
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.opts.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.opts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("ollama API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk ollamaStreamChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return fmt.Errorf("parsing stream chunk: %w", err)
		}
		if chunk.Message.Content != "" {
			if !emit(ctx, out, chunk.Message.Content) {
				return nil
			}
		}
		if chunk.Done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}

	return nil
}

// Ensure OllamaProvider implements Provider.
var _ Provider = (*OllamaProvider)(nil)
