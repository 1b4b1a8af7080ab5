// Package retrieval answers "what do our sources say about this question"
// by embedding the question and running a filtered similarity search.
//
// Retrieval is best-effort: any failure (embedding service down, index
// unreachable, malformed payloads) degrades to an empty result so the
// caller can fall back to question-only generation.
package retrieval

import (
	"context"

	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/qdrant"
)

// DefaultTopK is the number of passages requested when the caller does not
// specify one.
const DefaultTopK = 8

// Payload keys written by the ingestion pipeline.
const (
	payloadKeyChunk  = "chunk"
	payloadKeySource = "source"
)

// Retriever embeds questions and searches the vector index for passages.
type Retriever struct {
	embedder Embedder
	searcher Searcher
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewRetriever wires a retriever from its collaborators.
func NewRetriever(embedder Embedder, searcher Searcher, m *metrics.Metrics, log *logger.Logger) *Retriever {
	return &Retriever{
		embedder: embedder,
		searcher: searcher,
		metrics:  m,
		log:      log,
	}
}

// Retrieve returns up to k passages relevant to the question, optionally
// restricted to sources whose name contains sourceContains. It never
// returns an error: failures are logged, counted, and reported as an empty
// slice so generation can proceed without grounding.
func (r *Retriever) Retrieve(ctx context.Context, question string, k int, sourceContains string) []Passage {
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := r.embedder.Embed(ctx, question)
	if err != nil {
		r.log.Warn("retrieval disabled: embedding failed", err, nil)
		r.metrics.CountRetrievalFailure()
		return []Passage{}
	}

	req := qdrant.SearchRequest{
		Vector: vector,
		TopK:   k,
	}
	if sourceContains != "" {
		req.Filters = &qdrant.FilterSet{
			Must: &qdrant.ConditionSet{
				Conditions: []qdrant.FilterCondition{
					qdrant.TextContainsCondition{Key: payloadKeySource, Text: sourceContains},
				},
			},
		}
	}

	results, err := r.searcher.Search(ctx, req)
	if err != nil {
		r.log.Warn("retrieval disabled: search failed", err, nil)
		r.metrics.CountRetrievalFailure()
		return []Passage{}
	}

	passages := make([]Passage, 0, len(results))
	for _, res := range results {
		passages = append(passages, Passage{
			Text:   payloadString(res.Payload, payloadKeyChunk),
			Source: payloadString(res.Payload, payloadKeySource),
		})
	}

	r.metrics.CountRetrievedPassages(len(passages))
	r.log.Debug("retrieved passages", nil, map[string]interface{}{
		"count":   len(passages),
		"sources": distinctSources(passages),
	})
	return passages
}

// payloadString reads a string payload field, tolerating missing keys and
// non-string values.
func payloadString(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	s, _ := payload[key].(string)
	return s
}
