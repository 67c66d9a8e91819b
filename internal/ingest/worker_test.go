package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knoguchi/assistant/internal/broker"
	"github.com/knoguchi/assistant/internal/controlplane"
	"github.com/knoguchi/assistant/internal/parser"
	"github.com/knoguchi/assistant/internal/repository"
	"github.com/knoguchi/assistant/internal/vectorstore"
)

type statusCall struct {
	DocumentID string
	Status     string
	Count      int
	Message    string
}

type fakeNotifier struct {
	calls []statusCall
}

func (n *fakeNotifier) UpdateDocumentStatus(ctx context.Context, documentID, status string, chunksCount int, errorMessage string) bool {
	n.calls = append(n.calls, statusCall{documentID, status, chunksCount, errorMessage})
	return true
}

// terminal returns the status calls after the initial PROCESSING report.
func (n *fakeNotifier) terminal() []statusCall {
	var out []statusCall
	for _, c := range n.calls {
		if c.Status != controlplane.StatusProcessing {
			out = append(out, c)
		}
	}
	return out
}

type fakeChunkRepo struct {
	created []*repository.Chunk
	deleted []string
	failOn  error
}

func (r *fakeChunkRepo) CreateChunks(ctx context.Context, chunks []*repository.Chunk) error {
	if r.failOn != nil {
		return r.failOn
	}
	r.created = append(r.created, chunks...)
	return nil
}

func (r *fakeChunkRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*repository.Chunk, error) {
	return nil, nil
}

func (r *fakeChunkRepo) DeleteByDocument(ctx context.Context, documentID string) error {
	r.deleted = append(r.deleted, documentID)
	return nil
}

type fakeEmbedder struct {
	err error
}

func (e *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []float32{0.1, 0.2}, nil
}

func (e *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

func (e *fakeEmbedder) Dimension() int    { return 2 }
func (e *fakeEmbedder) ModelName() string { return "fake" }

type fakeStore struct {
	upserted []vectorstore.DocumentPoint
	deleted  []string
}

func (s *fakeStore) EnsureCollections(ctx context.Context, dimension int) error { return nil }

func (s *fakeStore) UpsertDocuments(ctx context.Context, points []vectorstore.DocumentPoint) error {
	s.upserted = append(s.upserted, points...)
	return nil
}

func (s *fakeStore) DeleteByDocument(ctx context.Context, documentID string) error {
	s.deleted = append(s.deleted, documentID)
	return nil
}

func (s *fakeStore) SearchDocuments(ctx context.Context, vector []float32, filter vectorstore.TenantFilter, limit int) ([]vectorstore.SearchHit, error) {
	return nil, nil
}

func (s *fakeStore) SearchCache(ctx context.Context, vector []float32, scope vectorstore.CacheScope, threshold float32) (*vectorstore.CacheHit, error) {
	return nil, nil
}

func (s *fakeStore) SaveCache(ctx context.Context, vector []float32, responseText string, scope vectorstore.CacheScope) error {
	return nil
}

func (s *fakeStore) Close() error { return nil }

type workerFixture struct {
	worker   *Worker
	notifier *fakeNotifier
	repo     *fakeChunkRepo
	embedder *fakeEmbedder
	store    *fakeStore
}

func newFixture() *workerFixture {
	f := &workerFixture{
		notifier: &fakeNotifier{},
		repo:     &fakeChunkRepo{},
		embedder: &fakeEmbedder{},
		store:    &fakeStore{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.worker = New(parser.New(1000, 200), f.repo, f.embedder, f.store, f.notifier, 1<<20, logger)
	return f
}

func writeTaskFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func task(path, filename string) broker.DocumentTask {
	return broker.DocumentTask{
		TaskID:         "task-1",
		DocumentID:     "doc-1",
		FilePath:       path,
		Filename:       filename,
		OrganizationID: 3,
		GroupID:        7,
		OwnerID:        42,
		Attempt:        1,
	}
}

func TestHandleSuccess(t *testing.T) {
	f := newFixture()
	path := writeTaskFile(t, "notes.txt", "Some document content worth indexing.")

	err := f.worker.Handle(context.Background(), task(path, "notes.txt"), false)
	require.NoError(t, err)

	terminal := f.notifier.terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, controlplane.StatusCompleted, terminal[0].Status)
	assert.Equal(t, 1, terminal[0].Count)
	assert.Empty(t, terminal[0].Message)

	require.Len(t, f.repo.created, 1)
	assert.Equal(t, "doc-1", f.repo.created[0].DocumentID)
	assert.Equal(t, 0, f.repo.created[0].ChunkIndex)

	require.Len(t, f.store.upserted, 1)
	payload := f.store.upserted[0].Payload
	assert.Equal(t, "doc-1", payload.DocumentID)
	assert.Equal(t, "notes.txt", payload.Filename)
	require.NotNil(t, payload.GroupID)
	assert.EqualValues(t, 7, *payload.GroupID)
	require.NotNil(t, payload.OwnerID)
	assert.EqualValues(t, 42, *payload.OwnerID)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "source file should be deleted")
}

func TestHandleOrgWideDocumentHasNoGroup(t *testing.T) {
	f := newFixture()
	path := writeTaskFile(t, "notes.txt", "content")

	tk := task(path, "notes.txt")
	tk.GroupID = 0

	require.NoError(t, f.worker.Handle(context.Background(), tk, false))
	require.Len(t, f.store.upserted, 1)
	assert.Nil(t, f.store.upserted[0].Payload.GroupID)
}

func TestHandleValidationErrorIsPermanent(t *testing.T) {
	f := newFixture()
	path := writeTaskFile(t, "report.exe", "binary")

	err := f.worker.Handle(context.Background(), task(path, "report.exe"), false)
	require.Error(t, err)
	assert.True(t, broker.IsPermanent(err), "validation failures must not be retried")

	terminal := f.notifier.terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, controlplane.StatusError, terminal[0].Status)
	assert.Equal(t, 0, terminal[0].Count)

	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.store.upserted)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "source file should be deleted")
}

func TestHandleMissingFileIsPermanent(t *testing.T) {
	f := newFixture()

	err := f.worker.Handle(context.Background(), task("/nonexistent/file.txt", "file.txt"), false)
	require.Error(t, err)
	assert.True(t, broker.IsPermanent(err))

	terminal := f.notifier.terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, controlplane.StatusError, terminal[0].Status)
}

func TestHandleOversizedFileIsPermanent(t *testing.T) {
	f := newFixture()
	f.worker.maxFileSize = 10
	path := writeTaskFile(t, "notes.txt", "this file is larger than ten bytes")

	err := f.worker.Handle(context.Background(), task(path, "notes.txt"), false)
	require.Error(t, err)
	assert.True(t, broker.IsPermanent(err))

	terminal := f.notifier.terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, controlplane.StatusError, terminal[0].Status)
	assert.Contains(t, terminal[0].Message, "exceeds maximum")
}

func TestHandleEmptyExtractionCompletes(t *testing.T) {
	f := newFixture()
	path := writeTaskFile(t, "empty.txt", "")

	err := f.worker.Handle(context.Background(), task(path, "empty.txt"), false)
	require.NoError(t, err)

	terminal := f.notifier.terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, controlplane.StatusCompleted, terminal[0].Status)
	assert.Equal(t, 0, terminal[0].Count)
	assert.Equal(t, "No text extracted from document", terminal[0].Message)

	assert.Empty(t, f.repo.created, "no chunks should be persisted")
	assert.Empty(t, f.store.upserted, "nothing should be indexed")
}

func TestHandleRetriableFailureSkipsFinalization(t *testing.T) {
	f := newFixture()
	f.embedder.err = errors.New("embedder down")
	path := writeTaskFile(t, "notes.txt", "content")

	err := f.worker.Handle(context.Background(), task(path, "notes.txt"), false)
	require.Error(t, err)
	assert.False(t, broker.IsPermanent(err))

	assert.Empty(t, f.notifier.terminal(), "no terminal status before the last attempt")

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "source file must survive for the retry")
}

func TestHandleRetriableFailureOnLastAttemptFinalizes(t *testing.T) {
	f := newFixture()
	f.embedder.err = errors.New("embedder down")
	path := writeTaskFile(t, "notes.txt", "content")

	tk := task(path, "notes.txt")
	tk.Attempt = 3

	err := f.worker.Handle(context.Background(), tk, true)
	require.Error(t, err)

	terminal := f.notifier.terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, controlplane.StatusError, terminal[0].Status)
	assert.Contains(t, terminal[0].Message, "embedder down")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "source file should be deleted at the terminal outcome")
}

func TestHandleEmptyExtractionClearsPreviousState(t *testing.T) {
	f := newFixture()
	path := writeTaskFile(t, "empty.txt", "")

	require.NoError(t, f.worker.Handle(context.Background(), task(path, "empty.txt"), false))

	assert.Contains(t, f.repo.deleted, "doc-1", "old chunks must be cleared even when extraction is empty")
	assert.Contains(t, f.store.deleted, "doc-1", "old vectors must be cleared even when extraction is empty")
}

func TestHandleReprocessingClearsPreviousState(t *testing.T) {
	f := newFixture()
	path := writeTaskFile(t, "notes.txt", "content")

	require.NoError(t, f.worker.Handle(context.Background(), task(path, "notes.txt"), false))

	assert.Contains(t, f.repo.deleted, "doc-1")
	assert.Contains(t, f.store.deleted, "doc-1")
}
