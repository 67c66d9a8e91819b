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

// DefaultGeminiBaseURL is the default Gemini API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiProvider streams generated content from the Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
	opts   clientOptions
}

// NewGeminiProvider creates a new Gemini backend.
func NewGeminiProvider(apiKey, model string, opts ...Option) *GeminiProvider {
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
		opts:   applyOptions(DefaultGeminiBaseURL, opts),
	}
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiStreamChunk struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateStream streams the completion. On any backend failure a single
// synthetic error chunk is emitted and the stream ends.
func (p *GeminiProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []Message) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		if err := p.stream(ctx, query, contextDocs, history, out); err != nil {
			emit(ctx, out, errorChunk("Gemini", err))
		}
	}()

	return out
}

func (p *GeminiProvider) stream(ctx context.Context, query string, contextDocs []string, history []Message, out chan<- string) error {
	var contents []geminiContent
	for _, h := range history {
		role := h.Role
		// Gemini names the model turn "model" rather than "assistant".
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: h.Content}}})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: buildContextPrompt(query, contextDocs)}},
	})

	body, err := json.Marshal(geminiRequest{
		Contents:          contents,
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: DefaultSystemPrompt}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: defaultMaxTokens,
		},
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse", p.opts.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.opts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var chunk geminiStreamChunk
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &chunk); err != nil {
			return fmt.Errorf("parsing stream chunk: %w", err)
		}
		if len(chunk.Candidates) == 0 {
			continue
		}
		for _, part := range chunk.Candidates[0].Content.Parts {
			if part.Text == "" {
				continue
			}
			if !emit(ctx, out, part.Text) {
				return nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}

	return nil
}

// Ensure GeminiProvider implements Provider.
var _ Provider = (*GeminiProvider)(nil)
