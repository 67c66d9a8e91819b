// Package vectorstore provides tenant-scoped vector storage over two logical
// collections: the document index and the semantic answer cache.
package vectorstore

import (
	"context"
)

// DocumentPayload is the payload attached to every point in the docs
// collection. Optional tenancy fields are nil when not applicable
// (GroupID is nil for org-wide documents).
type DocumentPayload struct {
	ChunkID        string
	DocumentID     string
	Filename       string
	OrganizationID *int64
	GroupID        *int64
	OwnerID        *int64
}

// DocumentPoint pairs a chunk embedding with its payload. The point id is
// always the chunk id, so upserts are idempotent per chunk.
type DocumentPoint struct {
	ChunkID string
	Vector  []float32
	Payload DocumentPayload
}

// SearchHit is a single result from a documents search.
type SearchHit struct {
	ChunkID string
	Score   float32
	Payload DocumentPayload
}

// TenantFilter restricts a documents search. Group membership takes
// precedence; ownership is the fallback when the caller has no groups.
// Organization id is deliberately absent: documents belong to groups, and a
// group belongs to at most one organization.
type TenantFilter struct {
	UserID   *int64
	GroupIDs []int64
}

// Empty reports whether the filter matches nothing. An empty filter
// short-circuits the search without calling the engine.
func (f TenantFilter) Empty() bool {
	return len(f.GroupIDs) == 0 && f.UserID == nil
}

// CacheHit is the single best semantic-cache match above the threshold.
type CacheHit struct {
	CacheID      string
	Score        float32
	ResponseText string
}

// VectorStore defines the operations the query and ingestion pipelines need.
type VectorStore interface {
	// EnsureCollections creates the docs and cache collections if absent,
	// using cosine distance and the given embedding dimension.
	EnsureCollections(ctx context.Context, dimension int) error

	// UpsertDocuments inserts or overwrites document points. Atomic per call.
	UpsertDocuments(ctx context.Context, points []DocumentPoint) error

	// DeleteByDocument removes every point whose payload document_id matches.
	// Idempotent.
	DeleteByDocument(ctx context.Context, documentID string) error

	// SearchDocuments returns the top-limit points by cosine similarity that
	// satisfy the tenant filter. An empty filter returns an empty result
	// without touching the engine.
	SearchDocuments(ctx context.Context, vector []float32, filter TenantFilter, limit int) ([]SearchHit, error)

	// SearchCache returns the top-1 cache entry with similarity >= threshold
	// matching the scope, or nil on a miss. Engine errors degrade to a miss.
	SearchCache(ctx context.Context, vector []float32, scope CacheScope, threshold float32) (*CacheHit, error)

	// SaveCache inserts a new cache entry for the scope. A scope without
	// identifiers is a no-op. Engine errors degrade to a no-op.
	SaveCache(ctx context.Context, vector []float32, responseText string, scope CacheScope) error

	Close() error
}
