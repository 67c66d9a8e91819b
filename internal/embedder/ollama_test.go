package embedder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func fakeOllama(t *testing.T, dimension int, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			http.NotFound(w, r)
			return
		}
		if calls != nil {
			calls.Add(1)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		embedding := make([]float64, dimension)
		for i := range embedding {
			embedding[i] = float64(len(req.Prompt)%7) * 0.1
		}
		json.NewEncoder(w).Encode(ollamaResponse{Embedding: embedding})
	}))
}

func TestNewOllamaEmbedderProbesDimension(t *testing.T) {
	srv := fakeOllama(t, 768, nil)
	defer srv.Close()

	e, err := NewOllamaEmbedder(context.Background(), OllamaConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOllamaEmbedder failed: %v", err)
	}

	if e.Dimension() != 768 {
		t.Errorf("Dimension() = %d, want 768", e.Dimension())
	}
	if e.ModelName() != DefaultOllamaModel {
		t.Errorf("ModelName() = %q, want %q", e.ModelName(), DefaultOllamaModel)
	}
}

func TestNewOllamaEmbedderUnreachable(t *testing.T) {
	srv := fakeOllama(t, 768, nil)
	srv.Close()

	_, err := NewOllamaEmbedder(context.Background(), OllamaConfig{BaseURL: srv.URL})
	if err == nil {
		t.Fatal("expected error when runtime is unreachable")
	}
}

func TestEmbedBatch(t *testing.T) {
	var calls atomic.Int64
	srv := fakeOllama(t, 16, &calls)
	defer srv.Close()

	e, err := NewOllamaEmbedder(context.Background(), OllamaConfig{BaseURL: srv.URL, BatchConcurrency: 2})
	if err != nil {
		t.Fatalf("NewOllamaEmbedder failed: %v", err)
	}
	calls.Store(0)

	texts := []string{"one", "two", "three", "four", "five"}
	vectors, err := e.EmbedBatch(context.Background(), texts)
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}

	if len(vectors) != len(texts) {
		t.Fatalf("expected %d vectors, got %d", len(texts), len(vectors))
	}
	for i, v := range vectors {
		if len(v) != 16 {
			t.Errorf("vector %d has dimension %d, want 16", i, len(v))
		}
	}
	if got := calls.Load(); got != int64(len(texts)) {
		t.Errorf("expected %d API calls, got %d", len(texts), got)
	}
}

func TestEmbedBatchEmpty(t *testing.T) {
	srv := fakeOllama(t, 16, nil)
	defer srv.Close()

	e, err := NewOllamaEmbedder(context.Background(), OllamaConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOllamaEmbedder failed: %v", err)
	}

	vectors, err := e.EmbedBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}
	if len(vectors) != 0 {
		t.Errorf("expected no vectors, got %d", len(vectors))
	}
}
