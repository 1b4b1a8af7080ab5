package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/guidesmith/guidesmith/internal/guide"
	"github.com/guidesmith/guidesmith/internal/retrieval"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/tracer"
)

type fakeRetriever struct {
	passages []retrieval.Passage
}

func (f fakeRetriever) Retrieve(_ context.Context, _ string, _ int, _ string) []retrieval.Passage {
	return f.passages
}

type fakeGenerator struct {
	guide      guide.Guide
	err        error
	lastPrompt string
}

func (f *fakeGenerator) GenerateGuide(_ context.Context, prompt string) (guide.Guide, error) {
	f.lastPrompt = prompt
	return f.guide, f.err
}

type passthroughAttacher struct {
	called bool
}

func (f *passthroughAttacher) Attach(_ context.Context, g guide.Guide) guide.Guide {
	f.called = true
	return g
}

func newTestService(r PassageRetriever, g Generator, a ImageAttacher) *Service {
	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "test"})
	tr := tracer.NewClient(tracer.Config{ServiceName: "test"}, log)
	return NewService(r, g, a, tr, metrics.NewMetrics(metrics.NewConfig()), log)
}

func TestGenerateModelTier(t *testing.T) {
	gen := &fakeGenerator{guide: guide.Guide{
		Title: "How to do it",
		Steps: []guide.Step{{Number: 9, Title: "a", Action: "b"}, {Number: 3, Title: "c", Action: "d"}},
	}}
	attacher := &passthroughAttacher{}
	svc := newTestService(fakeRetriever{passages: []retrieval.Passage{{Text: "ctx"}}}, gen, attacher)

	out := svc.Generate(context.Background(), "How do I do it?", "")

	if out.Title != "How to do it" {
		t.Errorf("title = %q", out.Title)
	}
	if out.Steps[0].Number != 1 || out.Steps[1].Number != 2 {
		t.Error("steps must be renumbered 1..n")
	}
	if !attacher.called {
		t.Error("attacher must run on the model path")
	}
	if !strings.Contains(gen.lastPrompt, "Using ONLY the information below") {
		t.Error("with passages present the grounded prompt must be used")
	}
}

func TestGenerateUngroundedPromptWithoutPassages(t *testing.T) {
	gen := &fakeGenerator{guide: guide.Guide{Title: "t"}}
	svc := newTestService(fakeRetriever{}, gen, &passthroughAttacher{})

	svc.Generate(context.Background(), "How do I do it?", "")

	if strings.Contains(gen.lastPrompt, "abstain") {
		t.Error("without passages the prompt must not carry the abstain instruction")
	}
}

func TestGenerateScaffoldOnModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unreachable")}
	attacher := &passthroughAttacher{}
	svc := newTestService(fakeRetriever{}, gen, attacher)

	out := svc.Generate(context.Background(), "How do I replace a fuse?", "")

	if len(out.Steps) != 1 {
		t.Fatalf("scaffold must have exactly one step, got %d", len(out.Steps))
	}
	if out.Abstain {
		t.Error("scaffold documents must not abstain")
	}
	if out.Title != "How to Replace a fuse?" {
		t.Errorf("scaffold title = %q", out.Title)
	}
	if out.Troubleshooting == nil || out.Safety == nil {
		t.Error("scaffold document must have non-nil slices")
	}
	if !attacher.called {
		t.Error("attacher must run even on the scaffold path")
	}
}

func TestGenerateNormalizesModelOutput(t *testing.T) {
	gen := &fakeGenerator{guide: guide.Guide{Title: "t"}} // nil slices from sparse JSON
	svc := newTestService(fakeRetriever{}, gen, &passthroughAttacher{})

	out := svc.Generate(context.Background(), "q", "")

	if out.Steps == nil || out.Troubleshooting == nil || out.Safety == nil {
		t.Error("generated guide must be normalized before it leaves the pipeline")
	}
}
