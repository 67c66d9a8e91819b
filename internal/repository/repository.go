// Package repository defines domain models and data access interfaces for
// document chunks. The documents table itself belongs to the control plane;
// this service only owns chunk content.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// Chunk is one contiguous piece of a document's text. PageNumber is nil for
// formats without pages.
type Chunk struct {
	ID         uuid.UUID
	DocumentID string
	ChunkIndex int
	Content    string
	PageNumber *int
	CreatedAt  time.Time
}

// ChunkRepository defines operations for chunk persistence
type ChunkRepository interface {
	// CreateChunks inserts all chunks in a single transaction. Either every
	// chunk lands or none do.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// GetByIDs retrieves chunks by id, in the order the ids are given.
	// Missing ids are skipped, not errors.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*Chunk, error)

	// DeleteByDocument removes every chunk of a document. Idempotent.
	DeleteByDocument(ctx context.Context, documentID string) error
}
