package retrieval

import (
	"context"

	"github.com/guidesmith/guidesmith/pkg/qdrant"
)

// Passage is one retrieved chunk of source material with its provenance.
type Passage struct {
	Text   string
	Source string
}

// Embedder turns text into a query vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Searcher runs a similarity query against the vector index.
type Searcher interface {
	Search(ctx context.Context, req qdrant.SearchRequest) ([]qdrant.SearchResult, error)
}
