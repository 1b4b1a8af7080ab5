package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// defaultBatchSize is the chunk size for batch upserts.
const defaultBatchSize = 200

// EnsureCollection verifies the configured collection exists and creates it
// (cosine distance, configured vector size) if missing. Safe to call
// multiple times; it exits early when the collection is already there.
func (c *Client) EnsureCollection(ctx context.Context) error {
	name := c.cfg.Collection
	if name == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: failed to list collections: %w", err)
	}

	if slices.Contains(collections, name) {
		return nil
	}

	c.log.Info("creating qdrant collection", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": c.cfg.VectorSize,
	})

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.cfg.VectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", name, err)
	}

	return nil
}

// Upsert inserts points into the configured collection in batches, waiting
// for each batch to be persisted before returning.
func (c *Client) Upsert(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	for start := 0; start < len(points); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(points))

		batch := make([]*qdrant.PointStruct, 0, end-start)
		for _, p := range points[start:end] {
			batch = append(batch, &qdrant.PointStruct{
				Id:      qdrant.NewID(p.ID),
				Vectors: qdrant.NewVectors(p.Vector...),
				Payload: qdrant.NewValueMap(p.Payload),
			})
		}

		wait := true
		req := &qdrant.UpsertPoints{
			CollectionName: c.cfg.Collection,
			Points:         batch,
			Wait:           &wait,
		}

		if _, err := c.api.Upsert(ctx, req); err != nil {
			return fmt.Errorf("qdrant: batch upsert failed at [%d:%d]: %w", start, end, err)
		}
	}

	return nil
}

// Search performs a similarity search in the configured collection and
// returns ranked results with their payloads converted to native Go types.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	if err := validateSearchInput(req.Vector, req.TopK); err != nil {
		return nil, err
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	limit := uint64(req.TopK)
	query := &qdrant.QueryPoints{
		CollectionName: c.cfg.Collection,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         buildFilter(req.Filters),
	}

	resp, err := c.api.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	return parseSearchResults(resp)
}

// parseSearchResults converts the SDK response into SearchResult values.
func parseSearchResults(resp []*qdrant.ScoredPoint) ([]SearchResult, error) {
	results := make([]SearchResult, 0, len(resp))
	for _, r := range resp {
		id, err := extractPointID(r.Id)
		if err != nil {
			return nil, err
		}

		results = append(results, SearchResult{
			ID:      id,
			Score:   r.Score,
			Payload: convertPayload(r.Payload),
		})
	}
	return results, nil
}
