package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	assistantv1 "github.com/knoguchi/assistant/gen/assistant/v1"
	"github.com/knoguchi/assistant/internal/broker"
	"github.com/knoguchi/assistant/internal/vectorstore"
)

// DefaultMaxFileSize is the admission limit when none is configured.
const DefaultMaxFileSize = 50 << 20

// TaskQueue enqueues document processing work.
type TaskQueue interface {
	Enqueue(ctx context.Context, task broker.DocumentTask) (string, error)
}

// KnowledgeBaseService implements assistantv1.KnowledgeBaseServiceServer.
// Admission only checks that the file exists and fits the size limit; the
// heavy work happens in the ingestion worker behind the queue.
type KnowledgeBaseService struct {
	assistantv1.UnimplementedKnowledgeBaseServiceServer

	queue       TaskQueue
	store       vectorstore.VectorStore
	maxFileSize int64
	logger      *slog.Logger
}

// NewKnowledgeBaseService creates the knowledge base service.
func NewKnowledgeBaseService(queue TaskQueue, store vectorstore.VectorStore, maxFileSize int64, logger *slog.Logger) *KnowledgeBaseService {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &KnowledgeBaseService{
		queue:       queue,
		store:       store,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ProcessDocument validates the uploaded file and enqueues it for ingestion.
// Rejections are reported in the response status, not as gRPC errors, so the
// control plane can record them against the document.
func (s *KnowledgeBaseService) ProcessDocument(ctx context.Context, req *assistantv1.ProcessDocumentRequest) (*assistantv1.ProcessDocumentResponse, error) {
	logger := s.logger.With("document_id", req.GetDocumentId(), "filename", req.GetFilename())

	info, err := os.Stat(req.GetFilePath())
	if err != nil {
		logger.Warn("document file not found", "path", req.GetFilePath())
		return errorResponse(req.GetDocumentId(), fmt.Sprintf("File not found: %s", req.GetFilePath())), nil
	}
	if info.Size() > s.maxFileSize {
		logger.Warn("document exceeds size limit", "size", info.Size(), "limit", s.maxFileSize)
		return errorResponse(req.GetDocumentId(),
			fmt.Sprintf("File size (%d) exceeds maximum (%d)", info.Size(), s.maxFileSize)), nil
	}

	taskID, err := s.queue.Enqueue(ctx, broker.DocumentTask{
		DocumentID:     req.GetDocumentId(),
		FilePath:       req.GetFilePath(),
		Filename:       req.GetFilename(),
		ContentType:    req.GetContentType(),
		OrganizationID: req.GetOrganizationId(),
		GroupID:        req.GetGroupId(),
		OwnerID:        req.GetOwnerId(),
	})
	if err != nil {
		logger.Error("failed to enqueue document", "error", err)
		return errorResponse(req.GetDocumentId(), fmt.Sprintf("Failed to enqueue document: %v", err)), nil
	}

	logger.Info("document accepted", "task_id", taskID)
	return &assistantv1.ProcessDocumentResponse{
		DocumentId: req.GetDocumentId(),
		Status:     "success",
		Message:    fmt.Sprintf("Document accepted for processing. Task ID: %s", taskID),
	}, nil
}

// DeleteDocument removes all of a document's vectors. Deleting a document
// that was never indexed succeeds.
func (s *KnowledgeBaseService) DeleteDocument(ctx context.Context, req *assistantv1.DeleteDocumentRequest) (*assistantv1.DeleteDocumentResponse, error) {
	if err := s.store.DeleteByDocument(ctx, req.GetDocumentId()); err != nil {
		s.logger.Error("failed to delete document vectors", "document_id", req.GetDocumentId(), "error", err)
		return &assistantv1.DeleteDocumentResponse{
			Status:  "error",
			Message: fmt.Sprintf("Failed to delete document vectors: %v", err),
		}, nil
	}

	s.logger.Info("document vectors deleted", "document_id", req.GetDocumentId())
	return &assistantv1.DeleteDocumentResponse{
		Status:  "success",
		Message: fmt.Sprintf("Document %s vectors deleted from vector store.", req.GetDocumentId()),
	}, nil
}

func errorResponse(documentID, message string) *assistantv1.ProcessDocumentResponse {
	return &assistantv1.ProcessDocumentResponse{
		DocumentId: documentID,
		Status:     "error",
		Message:    message,
	}
}

var _ assistantv1.KnowledgeBaseServiceServer = (*KnowledgeBaseService)(nil)
