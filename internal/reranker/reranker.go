// Package reranker provides cross-encoder re-ranking of retrieved passages.
//
// Re-ranking scores query-passage pairs together rather than independently,
// which improves precision when the top vector results have similar scores,
// at the cost of an extra model call per query.
package reranker

import (
	"context"
)

// Passage is a candidate to re-rank. Meta is opaque to the reranker and is
// returned unchanged.
type Passage struct {
	ID   string
	Text string
	Meta any
}

// ScoredPassage is a passage with its cross-encoder relevance score.
type ScoredPassage struct {
	Passage
	Score float32
}

// Reranker defines the interface for re-ranking passages.
type Reranker interface {
	// Rerank scores the passages against the query and returns at most topK
	// of them, sorted by descending score. Ties preserve the input order.
	// Empty input returns empty output without calling the model.
	Rerank(ctx context.Context, query string, passages []Passage, topK int) ([]ScoredPassage, error)
}
