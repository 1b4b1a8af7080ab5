package assets

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/guidesmith/guidesmith/internal/guide"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
)

type countingProvider struct {
	calls atomic.Int64
	err   error
}

func (p *countingProvider) Generate(_ context.Context, _ string) ([]byte, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return []byte("png"), nil
}

func newTestAttacher(t *testing.T, p Provider) *Attacher {
	t.Helper()
	cfg := DefaultConfig()
	store, err := NewFSStore(t.TempDir(), cfg.URLPrefix)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "test"})
	return NewAttacher(cfg, store, p, metrics.NewMetrics(metrics.NewConfig()), log)
}

func TestAttachSetsImageURLs(t *testing.T) {
	provider := &countingProvider{}
	a := newTestAttacher(t, provider)

	g := guide.Guide{Steps: []guide.Step{
		{Number: 1, Title: "Remove the wheel", Action: "Open the quick release"},
		{Number: 2, Title: "Refit the chain", Action: "Loop it over the smallest cog"},
	}}

	out := a.Attach(context.Background(), g)

	if provider.calls.Load() != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls.Load())
	}
	for i, s := range out.Steps {
		if !strings.HasPrefix(s.ImageURL, "/static/images/") || !strings.HasSuffix(s.ImageURL, ".png") {
			t.Errorf("step %d: bad image url %q", i, s.ImageURL)
		}
		if s.ImageError != "" {
			t.Errorf("step %d: unexpected image error %q", i, s.ImageError)
		}
	}
	if out.Steps[0].ImageURL == out.Steps[1].ImageURL {
		t.Error("distinct steps must get distinct image urls")
	}
}

func TestAttachSecondCallHitsCache(t *testing.T) {
	provider := &countingProvider{}
	a := newTestAttacher(t, provider)

	g := guide.Guide{Steps: []guide.Step{
		{Number: 1, Title: "Remove the wheel", Action: "Open the quick release"},
	}}

	first := a.Attach(context.Background(), g)
	second := a.Attach(context.Background(), g)

	if provider.calls.Load() != 1 {
		t.Errorf("provider calls = %d, want 1 (second call must reuse the cache)", provider.calls.Load())
	}
	if first.Steps[0].ImageURL != second.Steps[0].ImageURL {
		t.Errorf("cache hit must return the same url: %q vs %q",
			first.Steps[0].ImageURL, second.Steps[0].ImageURL)
	}
}

func TestAttachSkipsEmptySteps(t *testing.T) {
	provider := &countingProvider{}
	a := newTestAttacher(t, provider)

	g := guide.Guide{Steps: []guide.Step{
		{Number: 1, Title: "  ", Action: ""},
	}}

	out := a.Attach(context.Background(), g)

	if provider.calls.Load() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.calls.Load())
	}
	if out.Steps[0].ImageURL != "" || out.Steps[0].ImageError != "" {
		t.Errorf("empty step must stay untouched: %+v", out.Steps[0])
	}
}

func TestAttachRecordsFailureAndKeepsURL(t *testing.T) {
	provider := &countingProvider{err: errors.New("quota exceeded")}
	a := newTestAttacher(t, provider)

	g := guide.Guide{Steps: []guide.Step{
		{Number: 1, Title: "Remove the wheel", Action: "Open the quick release"},
	}}

	out := a.Attach(context.Background(), g)

	s := out.Steps[0]
	if s.ImageError == "" || !strings.Contains(s.ImageError, "quota exceeded") {
		t.Errorf("image error not recorded: %q", s.ImageError)
	}
	// The url points at the address the image will occupy once a later
	// request succeeds.
	if s.ImageURL == "" {
		t.Error("image url must be set even when generation fails")
	}
}

func TestAttachDoesNotMutateInput(t *testing.T) {
	provider := &countingProvider{}
	a := newTestAttacher(t, provider)

	g := guide.Guide{Steps: []guide.Step{
		{Number: 1, Title: "Remove the wheel", Action: "Open the quick release"},
	}}

	out := a.Attach(context.Background(), g)

	if g.Steps[0].ImageURL != "" {
		t.Error("input guide must not be mutated")
	}
	if out.Steps[0].ImageURL == "" {
		t.Error("output guide must carry the image url")
	}
}

func TestIllustrationPrompt(t *testing.T) {
	p := IllustrationPrompt("Remove the wheel", "Open the quick release", "flat diagram")
	if !strings.HasPrefix(p, "flat diagram. Show: Remove the wheel.") {
		t.Errorf("prompt must lead with style and title: %q", p)
	}
	if !strings.Contains(p, "Action: Open the quick release") {
		t.Errorf("prompt must carry the action detail: %q", p)
	}

	actionOnly := IllustrationPrompt("", "Open the quick release", "flat diagram")
	if !strings.Contains(actionOnly, "Show: Open the quick release.") {
		t.Errorf("action must stand in for a missing title: %q", actionOnly)
	}
	if strings.Contains(actionOnly, "Action:") {
		t.Errorf("no separate action detail without a title: %q", actionOnly)
	}
}
