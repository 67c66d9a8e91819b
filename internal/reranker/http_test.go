package reranker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func fakeRerankServer(t *testing.T, scores []float32, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rerank" {
			http.NotFound(w, r)
			return
		}
		if calls != nil {
			calls.Add(1)
		}

		var req rerankRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Texts) != len(scores) {
			http.Error(w, "unexpected text count", http.StatusBadRequest)
			return
		}

		results := make([]rerankResult, len(scores))
		for i, s := range scores {
			results[i] = rerankResult{Index: i, Score: s}
		}
		json.NewEncoder(w).Encode(results)
	}))
}

func TestRerankSortsDescending(t *testing.T) {
	srv := fakeRerankServer(t, []float32{0.1, 0.9, 0.5}, nil)
	defer srv.Close()

	r := NewHTTPReranker(srv.URL, "test-model")
	passages := []Passage{
		{ID: "a", Text: "first"},
		{ID: "b", Text: "second"},
		{ID: "c", Text: "third"},
	}

	scored, err := r.Rerank(context.Background(), "query", passages, 0)
	if err != nil {
		t.Fatalf("Rerank failed: %v", err)
	}

	wantOrder := []string{"b", "c", "a"}
	if len(scored) != len(wantOrder) {
		t.Fatalf("expected %d results, got %d", len(wantOrder), len(scored))
	}
	for i, id := range wantOrder {
		if scored[i].ID != id {
			t.Errorf("result %d = %s, want %s", i, scored[i].ID, id)
		}
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Error("scores not descending")
		}
	}
}

func TestRerankTiesKeepInputOrder(t *testing.T) {
	srv := fakeRerankServer(t, []float32{0.5, 0.5, 0.5}, nil)
	defer srv.Close()

	r := NewHTTPReranker(srv.URL, "test-model")
	passages := []Passage{
		{ID: "a", Text: "first"},
		{ID: "b", Text: "second"},
		{ID: "c", Text: "third"},
	}

	scored, err := r.Rerank(context.Background(), "query", passages, 0)
	if err != nil {
		t.Fatalf("Rerank failed: %v", err)
	}

	for i, id := range []string{"a", "b", "c"} {
		if scored[i].ID != id {
			t.Errorf("result %d = %s, want %s", i, scored[i].ID, id)
		}
	}
}

func TestRerankTopK(t *testing.T) {
	srv := fakeRerankServer(t, []float32{0.1, 0.9, 0.5, 0.7}, nil)
	defer srv.Close()

	r := NewHTTPReranker(srv.URL, "test-model")
	passages := []Passage{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}

	scored, err := r.Rerank(context.Background(), "query", passages, 2)
	if err != nil {
		t.Fatalf("Rerank failed: %v", err)
	}

	if len(scored) != 2 {
		t.Fatalf("expected 2 results, got %d", len(scored))
	}
	if scored[0].ID != "b" || scored[1].ID != "d" {
		t.Errorf("unexpected top-2: %s, %s", scored[0].ID, scored[1].ID)
	}
}

func TestRerankEmptyInputSkipsModel(t *testing.T) {
	var calls atomic.Int64
	srv := fakeRerankServer(t, nil, &calls)
	defer srv.Close()

	r := NewHTTPReranker(srv.URL, "test-model")

	scored, err := r.Rerank(context.Background(), "query", nil, 5)
	if err != nil {
		t.Fatalf("Rerank failed: %v", err)
	}
	if len(scored) != 0 {
		t.Errorf("expected no results, got %d", len(scored))
	}
	if calls.Load() != 0 {
		t.Error("empty input should not call the model")
	}
}

func TestRerankPreservesMeta(t *testing.T) {
	srv := fakeRerankServer(t, []float32{0.5}, nil)
	defer srv.Close()

	r := NewHTTPReranker(srv.URL, "test-model")
	meta := map[string]string{"document_id": "doc-1"}

	scored, err := r.Rerank(context.Background(), "query", []Passage{{ID: "a", Meta: meta}}, 1)
	if err != nil {
		t.Fatalf("Rerank failed: %v", err)
	}

	got, ok := scored[0].Meta.(map[string]string)
	if !ok || got["document_id"] != "doc-1" {
		t.Errorf("meta not preserved: %v", scored[0].Meta)
	}
}
