// Package service implements the gRPC front door: chat over the indexed
// corpus and document admission for the ingestion pipeline.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	assistantv1 "github.com/knoguchi/assistant/gen/assistant/v1"
	"github.com/knoguchi/assistant/internal/embedder"
	"github.com/knoguchi/assistant/internal/llm"
	"github.com/knoguchi/assistant/internal/metrics"
	"github.com/knoguchi/assistant/internal/repository"
	"github.com/knoguchi/assistant/internal/reranker"
	"github.com/knoguchi/assistant/internal/tokens"
	"github.com/knoguchi/assistant/internal/vectorstore"
)

// User-visible answers for the short-circuit paths. The stream always ends
// normally; failures reach the caller as an answer, not a gRPC status.
const (
	unauthorizedAnswer = "Unauthorized: User ID not provided."
	noDocumentsAnswer  = "I couldn't find any relevant documents to answer your question."
	noContentAnswer    = "I couldn't find the document content. Please try again."
	internalAnswer     = "Sorry, an internal error occurred while processing your request."
)

const snippetLength = 100

// ChatConfig tunes the retrieval pipeline.
type ChatConfig struct {
	CacheThreshold      float32
	SearchLimit         int
	RerankTopK          int
	MaxContextTokens    int
	ReserveOutputTokens int
}

func (c ChatConfig) withDefaults() ChatConfig {
	if c.CacheThreshold <= 0 {
		c.CacheThreshold = 0.95
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = 25
	}
	if c.RerankTopK <= 0 {
		c.RerankTopK = 5
	}
	if c.MaxContextTokens <= 0 {
		c.MaxContextTokens = 8192
	}
	if c.ReserveOutputTokens <= 0 {
		c.ReserveOutputTokens = 1024
	}
	return c
}

// ChatService implements assistantv1.ChatServiceServer.
type ChatService struct {
	assistantv1.UnimplementedChatServiceServer

	embedder embedder.Embedder
	store    vectorstore.VectorStore
	chunks   repository.ChunkRepository
	reranker reranker.Reranker
	provider llm.Provider
	counter  *tokens.Counter
	cfg      ChatConfig
	logger   *slog.Logger
}

// NewChatService creates the chat service.
func NewChatService(
	emb embedder.Embedder,
	store vectorstore.VectorStore,
	chunks repository.ChunkRepository,
	rr reranker.Reranker,
	provider llm.Provider,
	counter *tokens.Counter,
	cfg ChatConfig,
	logger *slog.Logger,
) *ChatService {
	return &ChatService{
		embedder: emb,
		store:    store,
		chunks:   chunks,
		reranker: rr,
		provider: provider,
		counter:  counter,
		cfg:      cfg.withDefaults(),
		logger:   logger,
	}
}

// sourceMeta rides through the reranker attached to each passage.
type sourceMeta struct {
	DocumentID string
	Filename   string
	Page       int
}

// Chat answers one question over the caller's visible corpus, streaming the
// generated answer chunk by chunk and finishing with the source documents.
func (s *ChatService) Chat(req *assistantv1.ChatRequest, stream grpc.ServerStreamingServer[assistantv1.ChatResponse]) error {
	ctx := stream.Context()
	start := time.Now()
	defer func() {
		metrics.ChatDuration.Observe(time.Since(start).Seconds())
	}()

	identity := identityFromContext(ctx)
	if identity.UserID == nil {
		metrics.ChatRequests.WithLabelValues("unauthorized").Inc()
		return stream.Send(&assistantv1.ChatResponse{Answer: unauthorizedAnswer})
	}

	logger := s.logger.With("user_id", *identity.UserID, "session_id", req.GetSessionId())

	vector, err := s.embedder.Embed(ctx, req.GetQuery())
	if err != nil {
		return s.internalError(stream, logger, "failed to embed query", err)
	}

	scope := vectorstore.DeriveScope(identity.UserID, identity.OrgID, identity.GroupIDs)
	hit, err := s.store.SearchCache(ctx, vector, scope, s.cfg.CacheThreshold)
	if err != nil {
		// A broken cache degrades to a miss; the request proceeds.
		logger.Warn("cache lookup failed", "error", err)
	}
	if hit != nil {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		metrics.ChatRequests.WithLabelValues("cached").Inc()
		logger.Info("semantic cache hit", "score", hit.Score)

		if err := stream.Send(&assistantv1.ChatResponse{Answer: hit.ResponseText, IsCached: true}); err != nil {
			return err
		}
		return stream.Send(&assistantv1.ChatResponse{
			IsCached:         true,
			ProcessingTimeMs: elapsedMs(start),
		})
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	filter := vectorstore.TenantFilter{UserID: identity.UserID, GroupIDs: identity.GroupIDs}
	hits, err := s.store.SearchDocuments(ctx, vector, filter, s.cfg.SearchLimit)
	if err != nil {
		return s.internalError(stream, logger, "failed to search documents", err)
	}
	if len(hits) == 0 {
		metrics.ChatRequests.WithLabelValues("no_results").Inc()
		return stream.Send(&assistantv1.ChatResponse{Answer: noDocumentsAnswer})
	}

	passages, err := s.hydrate(ctx, hits)
	if err != nil {
		return s.internalError(stream, logger, "failed to load chunk content", err)
	}
	if len(passages) == 0 {
		metrics.ChatRequests.WithLabelValues("no_results").Inc()
		return stream.Send(&assistantv1.ChatResponse{Answer: noContentAnswer})
	}

	ranked, err := s.reranker.Rerank(ctx, req.GetQuery(), passages, s.cfg.RerankTopK)
	if err != nil {
		return s.internalError(stream, logger, "failed to rerank passages", err)
	}

	history := historyFromContext(ctx)
	contextDocs := s.fitContext(req.GetQuery(), ranked, history)

	var full strings.Builder
	llmError := false
	for chunk := range s.provider.GenerateStream(ctx, req.GetQuery(), contextDocs, history) {
		if chunk == "" {
			continue
		}
		if strings.HasPrefix(chunk, "Error") {
			llmError = true
		} else {
			full.WriteString(chunk)
		}
		if err := stream.Send(&assistantv1.ChatResponse{Answer: chunk}); err != nil {
			return err
		}
	}
	if llmError {
		metrics.ChatRequests.WithLabelValues("llm_error").Inc()
		return nil
	}

	if response := full.String(); strings.TrimSpace(response) != "" {
		go s.saveCache(context.WithoutCancel(ctx), vector, response, scope)
	}

	metrics.ChatRequests.WithLabelValues("ok").Inc()
	return stream.Send(&assistantv1.ChatResponse{
		SourceDocuments:  sources(ranked),
		ProcessingTimeMs: elapsedMs(start),
	})
}

// hydrate fetches chunk content for the search hits, preserving hit order.
// Hits whose chunk row no longer exists are dropped.
func (s *ChatService) hydrate(ctx context.Context, hits []vectorstore.SearchHit) ([]reranker.Passage, error) {
	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.ChunkID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	rows, err := s.chunks.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*repository.Chunk, len(rows))
	for _, row := range rows {
		byID[row.ID.String()] = row
	}

	var passages []reranker.Passage
	for _, hit := range hits {
		row, ok := byID[hit.ChunkID]
		if !ok {
			continue
		}
		meta := sourceMeta{
			DocumentID: hit.Payload.DocumentID,
			Filename:   hit.Payload.Filename,
		}
		if row.PageNumber != nil {
			meta.Page = *row.PageNumber
		}
		passages = append(passages, reranker.Passage{ID: hit.ChunkID, Text: row.Content, Meta: meta})
	}
	return passages, nil
}

// fitContext drops reranked tail passages until the prompt fits the model's
// context window, preserving the reranker's order.
func (s *ChatService) fitContext(query string, ranked []reranker.ScoredPassage, history []llm.Message) []string {
	docs := make([]string, len(ranked))
	for i, r := range ranked {
		docs[i] = r.Text
	}
	historyTexts := make([]string, len(history))
	for i, h := range history {
		historyTexts[i] = h.Content
	}
	return s.counter.TruncateDocs(docs, llm.DefaultSystemPrompt, query, historyTexts,
		s.cfg.MaxContextTokens, s.cfg.ReserveOutputTokens)
}

func (s *ChatService) saveCache(ctx context.Context, vector []float32, response string, scope vectorstore.CacheScope) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.store.SaveCache(ctx, vector, response, scope); err != nil {
		s.logger.Warn("failed to save response to cache", "error", err)
	}
}

// internalError reports a pipeline failure as an apologetic answer. The
// stream ends normally; details stay in the server log.
func (s *ChatService) internalError(stream grpc.ServerStreamingServer[assistantv1.ChatResponse], logger *slog.Logger, msg string, err error) error {
	logger.Error(msg, "error", err)
	metrics.ChatRequests.WithLabelValues("error").Inc()
	return stream.Send(&assistantv1.ChatResponse{Answer: internalAnswer})
}

func sources(ranked []reranker.ScoredPassage) []*assistantv1.Source {
	out := make([]*assistantv1.Source, len(ranked))
	for i, r := range ranked {
		meta, _ := r.Meta.(sourceMeta)
		filename := meta.Filename
		if filename == "" {
			filename = "unknown"
		}
		page := meta.Page
		if page == 0 {
			page = 1
		}
		out[i] = &assistantv1.Source{
			DocumentId: meta.DocumentID,
			Filename:   filename,
			PageNumber: int32(page),
			Snippet:    snippet(r.Text),
			Score:      r.Score,
		}
	}
	return out
}

// snippet returns the first 100 characters with newlines flattened.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return strings.ReplaceAll(string(runes), "\n", " ") + "..."
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

var _ assistantv1.ChatServiceServer = (*ChatService)(nil)
