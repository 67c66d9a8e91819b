package vectorstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// QdrantStore implements VectorStore using Qdrant.
type QdrantStore struct {
	client          *qdrant.Client
	docsCollection  string
	cacheCollection string
	logger          *slog.Logger
}

// NewQdrantStore creates a new Qdrant vector store client.
func NewQdrantStore(host string, port int, docsCollection, cacheCollection string, logger *slog.Logger) (*QdrantStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &QdrantStore{
		client:          client,
		docsCollection:  docsCollection,
		cacheCollection: cacheCollection,
		logger:          logger,
	}, nil
}

// Close closes the Qdrant client connection.
func (s *QdrantStore) Close() error {
	return s.client.Close()
}

// EnsureCollections creates the docs and cache collections if they do not
// exist yet. Both use cosine distance with the embedder's dimension.
func (s *QdrantStore) EnsureCollections(ctx context.Context, dimension int) error {
	for _, name := range []string{s.docsCollection, s.cacheCollection} {
		exists, err := s.client.CollectionExists(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check collection existence: %w", err)
		}
		if exists {
			continue
		}

		err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: name,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(dimension),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
		s.logger.Info("created collection", "collection", name, "dimension", dimension)
	}

	return nil
}

// UpsertDocuments inserts or overwrites document chunks. The point id is the
// chunk id, so re-processing a document replaces its points in place.
func (s *QdrantStore) UpsertDocuments(ctx context.Context, points []DocumentPoint) error {
	if len(points) == 0 {
		return nil
	}

	qpoints := make([]*qdrant.PointStruct, len(points))
	for i, p := range points {
		payload := map[string]*qdrant.Value{
			"chunk_id":    qdrant.NewValueString(p.Payload.ChunkID),
			"document_id": qdrant.NewValueString(p.Payload.DocumentID),
			"filename":    qdrant.NewValueString(p.Payload.Filename),
		}
		if p.Payload.OrganizationID != nil {
			payload["organization_id"] = qdrant.NewValueInt(*p.Payload.OrganizationID)
		}
		if p.Payload.GroupID != nil {
			payload["group_id"] = qdrant.NewValueInt(*p.Payload.GroupID)
		}
		if p.Payload.OwnerID != nil {
			payload["owner_id"] = qdrant.NewValueInt(*p.Payload.OwnerID)
		}

		qpoints[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(p.ChunkID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: payload,
		}
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.docsCollection,
		Points:         qpoints,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}

// DeleteByDocument removes every point belonging to the document. Deleting a
// document that was never indexed is a no-op.
func (s *QdrantStore) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.docsCollection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{
						qdrant.NewMatch("document_id", documentID),
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete by document ID: %w", err)
	}

	return nil
}

// SearchDocuments performs similarity search restricted to the tenant filter.
func (s *QdrantStore) SearchDocuments(ctx context.Context, vector []float32, filter TenantFilter, limit int) ([]SearchHit, error) {
	if filter.Empty() {
		return nil, nil
	}

	response, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.docsCollection,
		Query:          qdrant.NewQuery(vector...),
		Filter:         documentFilter(filter),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	hits := make([]SearchHit, 0, len(response))
	for _, point := range response {
		hits = append(hits, SearchHit{
			ChunkID: point.Id.GetUuid(),
			Score:   point.Score,
			Payload: documentPayloadFrom(point.Payload),
		})
	}

	return hits, nil
}

// SearchCache returns the best cache entry at or above the threshold for the
// given scope. Engine errors are logged and degrade to a miss so a cache
// outage never blocks answering.
func (s *QdrantStore) SearchCache(ctx context.Context, vector []float32, scope CacheScope, threshold float32) (*CacheHit, error) {
	if scope.IsNone() {
		return nil, nil
	}

	response, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.cacheCollection,
		Query:          qdrant.NewQuery(vector...),
		Filter:         scope.filter(),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
		ScoreThreshold: qdrant.PtrOf(threshold),
	})
	if err != nil {
		s.logger.Warn("cache lookup failed", "error", err)
		return nil, nil
	}
	if len(response) == 0 {
		return nil, nil
	}

	point := response[0]
	hit := &CacheHit{
		CacheID: point.Id.GetUuid(),
		Score:   point.Score,
	}
	if payload := point.Payload; payload != nil {
		if v, ok := payload["response_text"]; ok {
			hit.ResponseText = v.GetStringValue()
		}
	}

	return hit, nil
}

// SaveCache stores a response under the given scope with a fresh id. Engine
// errors are logged and degrade to a no-op.
func (s *QdrantStore) SaveCache(ctx context.Context, vector []float32, responseText string, scope CacheScope) error {
	if scope.IsNone() {
		return nil
	}

	payload := scope.payload()
	payload["response_text"] = qdrant.NewValueString(responseText)

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.cacheCollection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(uuid.NewString()),
				Vectors: qdrant.NewVectors(vector...),
				Payload: payload,
			},
		},
	})
	if err != nil {
		s.logger.Warn("cache save failed", "error", err)
	}

	return nil
}

func documentPayloadFrom(payload map[string]*qdrant.Value) DocumentPayload {
	var p DocumentPayload
	if payload == nil {
		return p
	}
	if v, ok := payload["chunk_id"]; ok {
		p.ChunkID = v.GetStringValue()
	}
	if v, ok := payload["document_id"]; ok {
		p.DocumentID = v.GetStringValue()
	}
	if v, ok := payload["filename"]; ok {
		p.Filename = v.GetStringValue()
	}
	if v, ok := payload["organization_id"]; ok {
		p.OrganizationID = qdrant.PtrOf(v.GetIntegerValue())
	}
	if v, ok := payload["group_id"]; ok {
		p.GroupID = qdrant.PtrOf(v.GetIntegerValue())
	}
	if v, ok := payload["owner_id"]; ok {
		p.OwnerID = qdrant.PtrOf(v.GetIntegerValue())
	}
	return p
}

// Ensure QdrantStore implements VectorStore
var _ VectorStore = (*QdrantStore)(nil)
