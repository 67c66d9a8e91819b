package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assistantv1 "github.com/knoguchi/assistant/gen/assistant/v1"
	"github.com/knoguchi/assistant/internal/broker"
)

type fakeQueue struct {
	tasks []broker.DocumentTask
	err   error
}

func (q *fakeQueue) Enqueue(ctx context.Context, task broker.DocumentTask) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	q.tasks = append(q.tasks, task)
	return "task-123", nil
}

type deletingStore struct {
	fakeChatStore
	deleted   []string
	deleteErr error
}

func (s *deletingStore) DeleteByDocument(ctx context.Context, documentID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, documentID)
	return nil
}

func newKBService(queue *fakeQueue, store *deletingStore, maxFileSize int64) *KnowledgeBaseService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewKnowledgeBaseService(queue, store, maxFileSize, logger)
}

func writeUpload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessDocumentAccepted(t *testing.T) {
	queue := &fakeQueue{}
	svc := newKBService(queue, &deletingStore{}, 1024)
	path := writeUpload(t, "content")

	resp, err := svc.ProcessDocument(context.Background(), &assistantv1.ProcessDocumentRequest{
		DocumentId:     "doc-1",
		FilePath:       path,
		Filename:       "report.pdf",
		ContentType:    "application/pdf",
		OrganizationId: 3,
		GroupId:        7,
		OwnerId:        42,
	})
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Document accepted for processing. Task ID: task-123", resp.Message)
	assert.Equal(t, "doc-1", resp.DocumentId)

	require.Len(t, queue.tasks, 1)
	task := queue.tasks[0]
	assert.Equal(t, "doc-1", task.DocumentID)
	assert.Equal(t, path, task.FilePath)
	assert.EqualValues(t, 3, task.OrganizationID)
	assert.EqualValues(t, 7, task.GroupID)
	assert.EqualValues(t, 42, task.OwnerID)
}

func TestProcessDocumentFileNotFound(t *testing.T) {
	queue := &fakeQueue{}
	svc := newKBService(queue, &deletingStore{}, 1024)

	resp, err := svc.ProcessDocument(context.Background(), &assistantv1.ProcessDocumentRequest{
		DocumentId: "doc-1",
		FilePath:   "/nonexistent/report.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "File not found: /nonexistent/report.pdf", resp.Message)
	assert.Empty(t, queue.tasks)
}

func TestProcessDocumentSizeLimit(t *testing.T) {
	content := strings.Repeat("x", 100)

	t.Run("at the limit is accepted", func(t *testing.T) {
		queue := &fakeQueue{}
		svc := newKBService(queue, &deletingStore{}, 100)
		path := writeUpload(t, content)

		resp, err := svc.ProcessDocument(context.Background(), &assistantv1.ProcessDocumentRequest{
			DocumentId: "doc-1", FilePath: path, Filename: "report.pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("over the limit is rejected", func(t *testing.T) {
		queue := &fakeQueue{}
		svc := newKBService(queue, &deletingStore{}, 99)
		path := writeUpload(t, content)

		resp, err := svc.ProcessDocument(context.Background(), &assistantv1.ProcessDocumentRequest{
			DocumentId: "doc-1", FilePath: path, Filename: "report.pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "File size (100) exceeds maximum (99)", resp.Message)
		assert.Empty(t, queue.tasks)
	})
}

func TestProcessDocumentEnqueueFailure(t *testing.T) {
	queue := &fakeQueue{err: errors.New("redis down")}
	svc := newKBService(queue, &deletingStore{}, 1024)
	path := writeUpload(t, "content")

	resp, err := svc.ProcessDocument(context.Background(), &assistantv1.ProcessDocumentRequest{
		DocumentId: "doc-1", FilePath: path, Filename: "report.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "redis down")
}

func TestDeleteDocument(t *testing.T) {
	store := &deletingStore{}
	svc := newKBService(&fakeQueue{}, store, 1024)

	resp, err := svc.DeleteDocument(context.Background(), &assistantv1.DeleteDocumentRequest{DocumentId: "doc-1"})
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Document doc-1 vectors deleted from vector store.", resp.Message)
	assert.Equal(t, []string{"doc-1"}, store.deleted)
}

func TestDeleteDocumentStoreFailure(t *testing.T) {
	store := &deletingStore{deleteErr: errors.New("qdrant unavailable")}
	svc := newKBService(&fakeQueue{}, store, 1024)

	resp, err := svc.DeleteDocument(context.Background(), &assistantv1.DeleteDocumentRequest{DocumentId: "doc-1"})
	require.NoError(t, err)

	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "qdrant unavailable")
}
