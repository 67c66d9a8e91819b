package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/knoguchi/assistant/internal/repository"
)

// ChunkRepo implements repository.ChunkRepository
type ChunkRepo struct {
	db *DB
}

// NewChunkRepo creates a new chunk repository
func NewChunkRepo(db *DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// CreateChunks inserts all chunks in one transaction so a failed ingestion
// never leaves a partial document behind.
func (r *ChunkRepo) CreateChunks(ctx context.Context, chunks []*repository.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO document_chunks (id, document_id, chunk_index, content, page_number, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	for _, chunk := range chunks {
		_, err := tx.Exec(ctx, query,
			chunk.ID, chunk.DocumentID, chunk.ChunkIndex, chunk.Content, chunk.PageNumber)
		if err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", chunk.ChunkIndex, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit chunks: %w", err)
	}
	return nil
}

// GetByIDs retrieves chunks by id, preserving the order of the ids argument.
func (r *ChunkRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*repository.Chunk, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, document_id, chunk_index, content, page_number, created_at
		FROM document_chunks
		WHERE id = ANY($1)
	`
	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get chunks: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*repository.Chunk, len(ids))
	for rows.Next() {
		var chunk repository.Chunk
		err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.ChunkIndex,
			&chunk.Content, &chunk.PageNumber, &chunk.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		byID[chunk.ID] = &chunk
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunks: %w", err)
	}

	chunks := make([]*repository.Chunk, 0, len(ids))
	for _, id := range ids {
		if chunk, ok := byID[id]; ok {
			chunks = append(chunks, chunk)
		}
	}
	return chunks, nil
}

// DeleteByDocument removes every chunk of a document.
func (r *ChunkRepo) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM document_chunks WHERE document_id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete chunks: %w", err)
	}
	return nil
}

// Ensure ChunkRepo implements ChunkRepository
var _ repository.ChunkRepository = (*ChunkRepo)(nil)
