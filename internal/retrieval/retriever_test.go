package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/qdrant"
)

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return f.vector, f.err
}

type fakeSearcher struct {
	results []qdrant.SearchResult
	err     error
	lastReq qdrant.SearchRequest
}

func (f *fakeSearcher) Search(_ context.Context, req qdrant.SearchRequest) ([]qdrant.SearchResult, error) {
	f.lastReq = req
	return f.results, f.err
}

func newTestRetriever(e Embedder, s Searcher) *Retriever {
	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "test"})
	return NewRetriever(e, s, metrics.NewMetrics(metrics.NewConfig()), log)
}

func TestRetrieveMapsPayloads(t *testing.T) {
	searcher := &fakeSearcher{
		results: []qdrant.SearchResult{
			{ID: "a", Score: 0.9, Payload: map[string]any{"chunk": "first passage", "source": "manual.pdf"}},
			{ID: "b", Score: 0.8, Payload: map[string]any{"chunk": "second passage", "source": "faq.md"}},
		},
	}
	r := newTestRetriever(fakeEmbedder{vector: []float32{0.1, 0.2}}, searcher)

	got := r.Retrieve(context.Background(), "how?", 5, "")

	if len(got) != 2 {
		t.Fatalf("got %d passages, want 2", len(got))
	}
	if got[0].Text != "first passage" || got[0].Source != "manual.pdf" {
		t.Errorf("unexpected first passage: %+v", got[0])
	}
	if searcher.lastReq.TopK != 5 {
		t.Errorf("topK = %d, want 5", searcher.lastReq.TopK)
	}
	if searcher.lastReq.Filters != nil {
		t.Error("no source filter requested, but one was sent")
	}
}

func TestRetrieveAppliesSourceFilter(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestRetriever(fakeEmbedder{vector: []float32{0.1}}, searcher)

	r.Retrieve(context.Background(), "how?", 3, "manual")

	if searcher.lastReq.Filters == nil || searcher.lastReq.Filters.Must == nil {
		t.Fatal("expected a must-filter on the source field")
	}
	conds := searcher.lastReq.Filters.Must.Conditions
	if len(conds) != 1 {
		t.Fatalf("got %d conditions, want 1", len(conds))
	}
	tc, ok := conds[0].(qdrant.TextContainsCondition)
	if !ok {
		t.Fatalf("condition type = %T, want TextContainsCondition", conds[0])
	}
	if tc.Key != "source" || tc.Text != "manual" {
		t.Errorf("unexpected condition: %+v", tc)
	}
}

func TestRetrieveEmbeddingFailureYieldsEmpty(t *testing.T) {
	r := newTestRetriever(fakeEmbedder{err: errors.New("endpoint down")}, &fakeSearcher{})

	got := r.Retrieve(context.Background(), "how?", 3, "")

	if got == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("got %d passages, want 0", len(got))
	}
}

func TestRetrieveSearchFailureYieldsEmpty(t *testing.T) {
	r := newTestRetriever(fakeEmbedder{vector: []float32{0.1}}, &fakeSearcher{err: errors.New("grpc unavailable")})

	if got := r.Retrieve(context.Background(), "how?", 3, ""); len(got) != 0 {
		t.Fatalf("got %d passages, want 0", len(got))
	}
}

func TestRetrieveToleratesMissingPayloadKeys(t *testing.T) {
	searcher := &fakeSearcher{
		results: []qdrant.SearchResult{
			{ID: "a", Payload: map[string]any{"source": 42}},
			{ID: "b", Payload: nil},
		},
	}
	r := newTestRetriever(fakeEmbedder{vector: []float32{0.1}}, searcher)

	got := r.Retrieve(context.Background(), "how?", 2, "")

	if len(got) != 2 {
		t.Fatalf("got %d passages, want 2", len(got))
	}
	for i, p := range got {
		if p.Text != "" || p.Source != "" {
			t.Errorf("passage %d: expected empty fields, got %+v", i, p)
		}
	}
}

func TestRetrieveDefaultsTopK(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestRetriever(fakeEmbedder{vector: []float32{0.1}}, searcher)

	r.Retrieve(context.Background(), "how?", 0, "")

	if searcher.lastReq.TopK != DefaultTopK {
		t.Errorf("topK = %d, want %d", searcher.lastReq.TopK, DefaultTopK)
	}
}

func TestDistinctSources(t *testing.T) {
	passages := []Passage{
		{Source: "a"}, {Source: ""}, {Source: "b"}, {Source: "a"},
	}
	got := distinctSources(passages)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("distinctSources = %v, want [a b]", got)
	}
}
