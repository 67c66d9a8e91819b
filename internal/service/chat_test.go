package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpcmetadata "google.golang.org/grpc/metadata"

	assistantv1 "github.com/knoguchi/assistant/gen/assistant/v1"
	"github.com/knoguchi/assistant/internal/llm"
	"github.com/knoguchi/assistant/internal/repository"
	"github.com/knoguchi/assistant/internal/reranker"
	"github.com/knoguchi/assistant/internal/tokens"
	"github.com/knoguchi/assistant/internal/vectorstore"
)

// chatStream is a test double for the server-streaming side of Chat.
type chatStream struct {
	ctx  context.Context
	sent []*assistantv1.ChatResponse
}

func (s *chatStream) Send(resp *assistantv1.ChatResponse) error {
	s.sent = append(s.sent, resp)
	return nil
}

func (s *chatStream) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *chatStream) SetHeader(grpcmetadata.MD) error  { return nil }
func (s *chatStream) SendHeader(grpcmetadata.MD) error { return nil }
func (s *chatStream) SetTrailer(grpcmetadata.MD)       {}
func (s *chatStream) SendMsg(any) error                { return nil }
func (s *chatStream) RecvMsg(any) error                { return nil }

type fakeChatEmbedder struct {
	err error
}

func (e *fakeChatEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []float32{0.5, 0.5}, nil
}

func (e *fakeChatEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.5, 0.5}
	}
	return out, nil
}

func (e *fakeChatEmbedder) Dimension() int    { return 2 }
func (e *fakeChatEmbedder) ModelName() string { return "fake" }

type fakeChatStore struct {
	mu sync.Mutex

	cacheHit  *vectorstore.CacheHit
	cacheErr  error
	hits      []vectorstore.SearchHit
	searchErr error

	searchedFilter *vectorstore.TenantFilter
	savedResponse  string
	savedScope     *vectorstore.CacheScope
	saved          chan struct{}
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{saved: make(chan struct{}, 1)}
}

func (s *fakeChatStore) EnsureCollections(ctx context.Context, dimension int) error { return nil }

func (s *fakeChatStore) UpsertDocuments(ctx context.Context, points []vectorstore.DocumentPoint) error {
	return nil
}

func (s *fakeChatStore) DeleteByDocument(ctx context.Context, documentID string) error { return nil }

func (s *fakeChatStore) SearchDocuments(ctx context.Context, vector []float32, filter vectorstore.TenantFilter, limit int) ([]vectorstore.SearchHit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchedFilter = &filter
	return s.hits, s.searchErr
}

func (s *fakeChatStore) SearchCache(ctx context.Context, vector []float32, scope vectorstore.CacheScope, threshold float32) (*vectorstore.CacheHit, error) {
	return s.cacheHit, s.cacheErr
}

func (s *fakeChatStore) SaveCache(ctx context.Context, vector []float32, responseText string, scope vectorstore.CacheScope) error {
	s.mu.Lock()
	s.savedResponse = responseText
	s.savedScope = &scope
	s.mu.Unlock()
	select {
	case s.saved <- struct{}{}:
	default:
	}
	return nil
}

func (s *fakeChatStore) Close() error { return nil }

type fakeChatRepo struct {
	rows []*repository.Chunk
}

func (r *fakeChatRepo) CreateChunks(ctx context.Context, chunks []*repository.Chunk) error {
	return nil
}

func (r *fakeChatRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*repository.Chunk, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*repository.Chunk
	for _, row := range r.rows {
		if want[row.ID] {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) DeleteByDocument(ctx context.Context, documentID string) error { return nil }

// passthroughReranker scores passages by reverse input position.
type passthroughReranker struct {
	err error
}

func (r *passthroughReranker) Rerank(ctx context.Context, query string, passages []reranker.Passage, topK int) ([]reranker.ScoredPassage, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(passages) > topK {
		passages = passages[:topK]
	}
	out := make([]reranker.ScoredPassage, len(passages))
	for i, p := range passages {
		out[i] = reranker.ScoredPassage{Passage: p, Score: float32(len(passages) - i)}
	}
	return out, nil
}

type scriptedProvider struct {
	chunks []string

	mu      sync.Mutex
	queries []string
	docs    [][]string
	history [][]llm.Message
}

func (p *scriptedProvider) GenerateStream(ctx context.Context, query string, contextDocs []string, history []llm.Message) <-chan string {
	p.mu.Lock()
	p.queries = append(p.queries, query)
	p.docs = append(p.docs, contextDocs)
	p.history = append(p.history, history)
	p.mu.Unlock()

	out := make(chan string, len(p.chunks))
	for _, c := range p.chunks {
		out <- c
	}
	close(out)
	return out
}

func (p *scriptedProvider) Name() string { return "scripted" }

type chatFixture struct {
	service  *ChatService
	store    *fakeChatStore
	repo     *fakeChatRepo
	provider *scriptedProvider
	embedder *fakeChatEmbedder
	reranker *passthroughReranker
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		store:    newFakeChatStore(),
		repo:     &fakeChatRepo{},
		provider: &scriptedProvider{chunks: []string{"The answer", " is 42."}},
		embedder: &fakeChatEmbedder{},
		reranker: &passthroughReranker{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = NewChatService(f.embedder, f.store, f.repo, f.reranker, f.provider,
		&tokens.Counter{}, ChatConfig{}, logger)
	return f
}

// seedCorpus indexes one chunk and returns its id.
func (f *chatFixture) seedCorpus(content string) uuid.UUID {
	id := uuid.New()
	page := 2
	f.repo.rows = append(f.repo.rows, &repository.Chunk{
		ID:         id,
		DocumentID: "doc-1",
		Content:    content,
		PageNumber: &page,
	})
	f.store.hits = append(f.store.hits, vectorstore.SearchHit{
		ChunkID: id.String(),
		Score:   0.9,
		Payload: vectorstore.DocumentPayload{
			ChunkID:    id.String(),
			DocumentID: "doc-1",
			Filename:   "notes.txt",
		},
	})
	return id
}

func userCtx() context.Context {
	return ctxWithMetadata("x-user-id", "1")
}

func TestChatUnauthorized(t *testing.T) {
	f := newChatFixture()
	stream := &chatStream{ctx: context.Background()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "hello"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 1)
	assert.Equal(t, "Unauthorized: User ID not provided.", stream.sent[0].Answer)
}

func TestChatNoRelevantDocuments(t *testing.T) {
	f := newChatFixture()
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "anything"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 1)
	assert.Equal(t, "I couldn't find any relevant documents to answer your question.", stream.sent[0].Answer)
}

func TestChatStaleHitsAreDropped(t *testing.T) {
	f := newChatFixture()
	// A hit whose chunk row no longer exists.
	f.store.hits = []vectorstore.SearchHit{{ChunkID: uuid.NewString()}}
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "anything"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 1)
	assert.Equal(t, "I couldn't find the document content. Please try again.", stream.sent[0].Answer)
}

func TestChatStreamsAnswerAndSources(t *testing.T) {
	f := newChatFixture()
	f.seedCorpus("Paris is the capital of France.\nIt is known for the Eiffel Tower.")
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "What is the capital of France?"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 3)
	assert.Equal(t, "The answer", stream.sent[0].Answer)
	assert.Equal(t, " is 42.", stream.sent[1].Answer)

	final := stream.sent[2]
	assert.Empty(t, final.Answer)
	assert.Greater(t, final.ProcessingTimeMs, 0.0)
	require.Len(t, final.SourceDocuments, 1)

	src := final.SourceDocuments[0]
	assert.Equal(t, "doc-1", src.DocumentId)
	assert.Equal(t, "notes.txt", src.Filename)
	assert.EqualValues(t, 2, src.PageNumber)
	assert.Equal(t, "Paris is the capital of France. It is known for the Eiffel Tower....", src.Snippet)
	assert.Greater(t, src.Score, float32(0))

	// The successful response lands in the semantic cache.
	select {
	case <-f.store.saved:
	case <-time.After(time.Second):
		t.Fatal("cache save did not happen")
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	assert.Equal(t, "The answer is 42.", f.store.savedResponse)
	require.NotNil(t, f.store.savedScope)
}

func TestChatSearchUsesCallerIdentity(t *testing.T) {
	f := newChatFixture()
	f.seedCorpus("content")
	stream := &chatStream{ctx: ctxWithMetadata("x-user-id", "1", "x-group-ids", "10,20")}

	require.NoError(t, f.service.Chat(&assistantv1.ChatRequest{Query: "q"}, stream))

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	require.NotNil(t, f.store.searchedFilter)
	require.NotNil(t, f.store.searchedFilter.UserID)
	assert.EqualValues(t, 1, *f.store.searchedFilter.UserID)
	assert.Equal(t, []int64{10, 20}, f.store.searchedFilter.GroupIDs)
}

func TestChatCacheHit(t *testing.T) {
	f := newChatFixture()
	f.store.cacheHit = &vectorstore.CacheHit{CacheID: "c1", Score: 0.97, ResponseText: "cached answer"}
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "repeat"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 2)
	assert.Equal(t, "cached answer", stream.sent[0].Answer)
	assert.True(t, stream.sent[0].IsCached)
	assert.Equal(t, 0.0, stream.sent[0].ProcessingTimeMs)

	assert.Empty(t, stream.sent[1].Answer)
	assert.True(t, stream.sent[1].IsCached)

	// No retrieval or generation on a cache hit.
	f.store.mu.Lock()
	assert.Nil(t, f.store.searchedFilter)
	f.store.mu.Unlock()
	f.provider.mu.Lock()
	assert.Empty(t, f.provider.queries)
	f.provider.mu.Unlock()
}

func TestChatCacheLookupErrorDegradesToMiss(t *testing.T) {
	f := newChatFixture()
	f.seedCorpus("Paris is the capital of France.")
	f.store.cacheErr = errors.New("cache collection unavailable")
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "What is the capital of France?"}, stream)
	require.NoError(t, err)

	// The full pipeline runs: streamed answer plus the terminal sources message.
	require.Len(t, stream.sent, 3)
	assert.Equal(t, "The answer", stream.sent[0].Answer)
	assert.False(t, stream.sent[0].IsCached)
	require.Len(t, stream.sent[2].SourceDocuments, 1)
}

func TestChatLLMErrorSkipsSourcesAndCache(t *testing.T) {
	f := newChatFixture()
	f.seedCorpus("content")
	f.provider.chunks = []string{"Error generating response (OpenAI): rate limited"}
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "q"}, stream)
	require.NoError(t, err)

	// The error chunk is forwarded, but no terminal sources message follows.
	require.Len(t, stream.sent, 1)
	assert.True(t, strings.HasPrefix(stream.sent[0].Answer, "Error"))

	select {
	case <-f.store.saved:
		t.Fatal("failed responses must not be cached")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestChatInternalFailureApologizes(t *testing.T) {
	f := newChatFixture()
	f.seedCorpus("content")
	f.reranker.err = errors.New("reranker down")
	stream := &chatStream{ctx: userCtx()}

	err := f.service.Chat(&assistantv1.ChatRequest{Query: "q"}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 1)
	assert.Equal(t, "Sorry, an internal error occurred while processing your request.", stream.sent[0].Answer)
}

func TestChatForwardsHistoryToProvider(t *testing.T) {
	f := newChatFixture()
	f.seedCorpus("content")
	stream := &chatStream{ctx: ctxWithMetadata(
		"x-user-id", "1",
		"x-chat-history", `[{"role":"user","content":"earlier question"}]`,
	)}

	require.NoError(t, f.service.Chat(&assistantv1.ChatRequest{Query: "q"}, stream))

	f.provider.mu.Lock()
	defer f.provider.mu.Unlock()
	require.Len(t, f.provider.history, 1)
	assert.Equal(t, []llm.Message{{Role: "user", Content: "earlier question"}}, f.provider.history[0])
	require.Len(t, f.provider.docs, 1)
	assert.Equal(t, []string{"content"}, f.provider.docs[0])
}
