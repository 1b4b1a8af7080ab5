// Package assets supplies the per-step illustrations of a guide from a
// content-addressed cache, generating on miss and reusing on hit.
//
// The cache key is derived from the step's semantic identity (title,
// action, style, provider), so identical steps across requests share one
// image and the store path doubles as the cache index. Image failures
// never block the document: they are recorded on the step and the rest of
// the guide proceeds.
package assets

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/guidesmith/guidesmith/internal/guide"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
)

// Attacher decorates guide steps with cached or freshly generated
// illustrations.
type Attacher struct {
	store    Store
	provider Provider
	cfg      Config
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewAttacher wires an attacher from its collaborators.
func NewAttacher(cfg Config, store Store, provider Provider, m *metrics.Metrics, log *logger.Logger) *Attacher {
	return &Attacher{
		store:    store,
		provider: provider,
		cfg:      cfg,
		metrics:  m,
		log:      log,
	}
}

// Attach returns a copy of the guide with image_url (and image_error on
// failure) set on each illustratable step. Steps without a title and
// action are left untouched. Attach never fails; per-step errors are
// recorded on the step itself.
func (a *Attacher) Attach(ctx context.Context, g guide.Guide) guide.Guide {
	if len(g.Steps) == 0 {
		return g
	}

	steps := make([]guide.Step, len(g.Steps))
	copy(steps, g.Steps)

	var eg errgroup.Group
	eg.SetLimit(a.cfg.Concurrency)
	for i := range steps {
		eg.Go(func() error {
			a.attachStep(ctx, &steps[i])
			return nil
		})
	}
	// Goroutines report failures on the step itself, never as errors.
	_ = eg.Wait()

	g.Steps = steps
	return g
}

// attachStep resolves one step's illustration: cache lookup, generation on
// miss, then URL assignment. image_url is set even when generation failed,
// so a later request that fills the cache heals the link.
func (a *Attacher) attachStep(ctx context.Context, s *guide.Step) {
	title := strings.TrimSpace(s.Title)
	action := strings.TrimSpace(s.Action)
	if title == "" && action == "" {
		return
	}

	key := CacheKey(title, action, a.cfg.Style, a.cfg.Provider)
	name := key + ".png"

	exists, err := a.store.Exists(ctx, name)
	if err != nil {
		a.log.Warn("asset store lookup failed, treating as miss", err, map[string]interface{}{"asset": name})
		exists = false
	}

	if exists {
		a.metrics.CountCacheHit()
	} else {
		a.metrics.CountCacheMiss()
		if err := a.generate(ctx, title, action, name); err != nil {
			s.ImageError = err.Error()
			a.metrics.CountImageFailure()
			a.log.Warn("step illustration failed", err, map[string]interface{}{
				"asset": name,
				"step":  s.Number,
			})
		}
	}

	url, err := a.store.URL(ctx, name)
	if err != nil {
		if s.ImageError == "" {
			s.ImageError = err.Error()
		}
		return
	}
	s.ImageURL = url
}

// generate produces the illustration and publishes it to the store.
func (a *Attacher) generate(ctx context.Context, title, action, name string) error {
	prompt := IllustrationPrompt(title, action, a.cfg.Style)
	data, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	return a.store.Put(ctx, name, data)
}
