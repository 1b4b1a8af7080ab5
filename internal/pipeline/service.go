// Package pipeline is the public entry point of guide generation. It runs
// the retrieve → compose → generate → normalize → illustrate sequence and
// guarantees the caller always receives a well-formed guide: every failure
// past configuration is converted into a degraded-but-valid document.
package pipeline

import (
	"context"

	"github.com/guidesmith/guidesmith/internal/guide"
	"github.com/guidesmith/guidesmith/internal/prompt"
	"github.com/guidesmith/guidesmith/internal/retrieval"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/tracer"
)

// Generation tiers, from best to worst. The tier names the stage that
// produced the final document and labels the guides_total metric.
const (
	tierModel    = "model"
	tierScaffold = "scaffold"
)

// PassageRetriever supplies grounding material for a question.
type PassageRetriever interface {
	Retrieve(ctx context.Context, question string, k int, sourceContains string) []retrieval.Passage
}

// Generator turns a prompt into a structured guide.
type Generator interface {
	GenerateGuide(ctx context.Context, prompt string) (guide.Guide, error)
}

// ImageAttacher decorates guide steps with illustrations.
type ImageAttacher interface {
	Attach(ctx context.Context, g guide.Guide) guide.Guide
}

// Service orchestrates the guide generation pipeline.
type Service struct {
	retriever  PassageRetriever
	generator  Generator
	attacher   ImageAttacher
	scaffolder Scaffolder
	tracer     *tracer.Tracer
	metrics    *metrics.Metrics
	log        *logger.Logger
}

// NewService wires the pipeline from its stages.
func NewService(r PassageRetriever, g Generator, a ImageAttacher, t *tracer.Tracer, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{
		retriever:  r,
		generator:  g,
		attacher:   a,
		scaffolder: NewScaffolder(),
		tracer:     t,
		metrics:    m,
		log:        log,
	}
}

// Generate produces a complete guide for the question. It never returns an
// error: retrieval failures degrade to question-only generation, model
// failures degrade to a scaffold document, and image failures are recorded
// per step.
func (s *Service) Generate(ctx context.Context, question, sourceContains string) guide.Guide {
	ctx, span := s.tracer.StartSpan(ctx, "pipeline.generate")
	defer span.End()
	s.tracer.SetAttributes(span, map[string]interface{}{
		"question_length": len(question),
		"source_filter":   sourceContains != "",
	})

	passages := s.retriever.Retrieve(ctx, question, retrieval.DefaultTopK, sourceContains)

	g, tier := s.generate(ctx, question, passages)
	g.Normalize()
	s.metrics.CountGuide(tier)

	g = s.attacher.Attach(ctx, g)
	return g
}

// generate runs the model path and falls back to the scaffold when it
// fails for any reason.
func (s *Service) generate(ctx context.Context, question string, passages []retrieval.Passage) (guide.Guide, string) {
	p := prompt.Compose(question, passages)

	g, err := s.generator.GenerateGuide(ctx, p)
	if err != nil {
		s.log.Warn("model generation failed, serving scaffold guide", err, map[string]interface{}{
			"passages": len(passages),
		})
		return s.scaffolder.Build(question), tierScaffold
	}
	return g, tierModel
}
