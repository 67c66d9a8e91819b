package reranker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
)

// HTTPReranker calls a text-embeddings-inference style /rerank endpoint.
type HTTPReranker struct {
	baseURL string
	model   string
	client  *http.Client
}

// Option configures the HTTPReranker.
type Option func(*HTTPReranker)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *HTTPReranker) {
		r.client = client
	}
}

// NewHTTPReranker creates a reranker backed by the model server at baseURL.
func NewHTTPReranker(baseURL, model string, opts ...Option) *HTTPReranker {
	r := &HTTPReranker{
		baseURL: baseURL,
		model:   model,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type rerankRequest struct {
	Model string   `json:"model"`
	Query string   `json:"query"`
	Texts []string `json:"texts"`
}

type rerankResult struct {
	Index int     `json:"index"`
	Score float32 `json:"score"`
}

// Rerank scores the passages and returns at most topK, sorted by descending
// score. Sorting is stable so equal scores keep the input order.
func (r *HTTPReranker) Rerank(ctx context.Context, query string, passages []Passage, topK int) ([]ScoredPassage, error) {
	if len(passages) == 0 {
		return nil, nil
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}

	reqBody, err := json.Marshal(rerankRequest{
		Model: r.model,
		Query: query,
		Texts: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/rerank", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("reranker API error (status %d): %s", resp.StatusCode, string(body))
	}

	var results []rerankResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scores := make(map[int]float32, len(results))
	for _, res := range results {
		if res.Index < 0 || res.Index >= len(passages) {
			return nil, fmt.Errorf("reranker returned out-of-range index %d", res.Index)
		}
		scores[res.Index] = res.Score
	}

	// Assemble in input order before sorting so ties keep the input order.
	scored := make([]ScoredPassage, 0, len(passages))
	for i, p := range passages {
		score, ok := scores[i]
		if !ok {
			return nil, fmt.Errorf("reranker returned no score for passage %d", i)
		}
		scored = append(scored, ScoredPassage{Passage: p, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}

	return scored, nil
}

// Ensure HTTPReranker implements Reranker
var _ Reranker = (*HTTPReranker)(nil)
