// Package ingest executes queued document processing tasks: parse, persist,
// embed, index, and report the outcome to the control plane.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/knoguchi/assistant/internal/broker"
	"github.com/knoguchi/assistant/internal/controlplane"
	"github.com/knoguchi/assistant/internal/embedder"
	"github.com/knoguchi/assistant/internal/metrics"
	"github.com/knoguchi/assistant/internal/parser"
	"github.com/knoguchi/assistant/internal/repository"
	"github.com/knoguchi/assistant/internal/vectorstore"
)

// emptyExtractionMessage explains a COMPLETED document with zero chunks.
const emptyExtractionMessage = "No text extracted from document"

// Worker processes one document task at a time.
type Worker struct {
	parser      *parser.Parser
	chunks      repository.ChunkRepository
	embedder    embedder.Embedder
	store       vectorstore.VectorStore
	notifier    controlplane.Notifier
	maxFileSize int64
	logger      *slog.Logger
}

// New creates an ingestion worker. maxFileSize mirrors the admission limit;
// the worker re-checks it because the file may have changed since admission.
func New(p *parser.Parser, chunks repository.ChunkRepository, emb embedder.Embedder, store vectorstore.VectorStore, notifier controlplane.Notifier, maxFileSize int64, logger *slog.Logger) *Worker {
	return &Worker{
		parser:      p,
		chunks:      chunks,
		embedder:    emb,
		store:       store,
		notifier:    notifier,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Handle runs the pipeline for one task. Finalization (the terminal status
// RPC and deleting the source file) happens only when the outcome is
// terminal: success, a permanent failure, or the last allowed attempt. A
// retriable failure before the last attempt leaves the file in place for
// the next attempt.
func (w *Worker) Handle(ctx context.Context, task broker.DocumentTask, lastAttempt bool) error {
	logger := w.logger.With(
		"task_id", task.TaskID,
		"document_id", task.DocumentID,
		"attempt", task.Attempt,
	)
	logger.Info("processing document", "filename", task.Filename)

	w.notifier.UpdateDocumentStatus(ctx, task.DocumentID, controlplane.StatusProcessing, 0, "")

	count, err := w.process(ctx, task)
	switch {
	case err == nil:
		message := ""
		if count == 0 {
			message = emptyExtractionMessage
		}
		w.finalize(ctx, task, controlplane.StatusCompleted, count, message, logger)
		metrics.DocumentsProcessed.WithLabelValues("completed").Inc()
		logger.Info("document processed", "chunks", count)
		return nil

	case broker.IsPermanent(err) || lastAttempt:
		w.finalize(ctx, task, controlplane.StatusError, 0, err.Error(), logger)
		metrics.DocumentsProcessed.WithLabelValues("error").Inc()
		logger.Error("document failed", "error", err)
		return err

	default:
		logger.Warn("document attempt failed", "error", err)
		return err
	}
}

func (w *Worker) process(ctx context.Context, task broker.DocumentTask) (int, error) {
	info, err := os.Stat(task.FilePath)
	if err != nil {
		return 0, broker.Permanent(fmt.Errorf("source file missing: %w", err))
	}
	if w.maxFileSize > 0 && info.Size() > w.maxFileSize {
		return 0, broker.Permanent(fmt.Errorf("file size (%d) exceeds maximum (%d)", info.Size(), w.maxFileSize))
	}

	parsed, err := w.parser.Parse(ctx, task.FilePath, task.Filename)
	if err != nil {
		if errors.Is(err, parser.ErrValidation) {
			return 0, broker.Permanent(err)
		}
		return 0, fmt.Errorf("failed to parse document: %w", err)
	}

	// Re-processing the same document replaces its previous chunks and
	// vectors, so repeated admissions converge instead of conflicting. This
	// runs even when extraction is empty; a document that shrank to nothing
	// must not stay searchable under its old content.
	if err := w.chunks.DeleteByDocument(ctx, task.DocumentID); err != nil {
		return 0, fmt.Errorf("failed to clear previous chunks: %w", err)
	}
	if err := w.store.DeleteByDocument(ctx, task.DocumentID); err != nil {
		return 0, fmt.Errorf("failed to clear previous vectors: %w", err)
	}

	if len(parsed) == 0 {
		return 0, nil
	}

	rows := make([]*repository.Chunk, len(parsed))
	texts := make([]string, len(parsed))
	for i, c := range parsed {
		page := c.Page
		rows[i] = &repository.Chunk{
			ID:         uuid.New(),
			DocumentID: task.DocumentID,
			ChunkIndex: i,
			Content:    c.Text,
			PageNumber: &page,
		}
		texts[i] = c.Text
	}

	if err := w.chunks.CreateChunks(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to persist chunks: %w", err)
	}

	vectors, err := w.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed chunks: %w", err)
	}

	points := make([]vectorstore.DocumentPoint, len(rows))
	for i, row := range rows {
		payload := vectorstore.DocumentPayload{
			ChunkID:        row.ID.String(),
			DocumentID:     task.DocumentID,
			Filename:       task.Filename,
			OrganizationID: &task.OrganizationID,
			OwnerID:        &task.OwnerID,
		}
		if task.GroupID != 0 {
			payload.GroupID = &task.GroupID
		}
		points[i] = vectorstore.DocumentPoint{
			ChunkID: row.ID.String(),
			Vector:  vectors[i],
			Payload: payload,
		}
	}

	if err := w.store.UpsertDocuments(ctx, points); err != nil {
		return 0, fmt.Errorf("failed to index chunks: %w", err)
	}
	metrics.ChunksIndexed.Add(float64(len(points)))

	return len(rows), nil
}

// finalize reports the terminal status and removes the source file. It runs
// even when the surrounding context is cancelled; the control plane must
// learn the outcome either way.
func (w *Worker) finalize(ctx context.Context, task broker.DocumentTask, status string, count int, message string, logger *slog.Logger) {
	ctx = context.WithoutCancel(ctx)

	if ok := w.notifier.UpdateDocumentStatus(ctx, task.DocumentID, status, count, message); !ok {
		logger.Error("failed to report terminal status", "status", status)
	}

	if err := os.Remove(task.FilePath); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove source file", "path", task.FilePath, "error", err)
	}
}
