package pipeline

import (
	"go.uber.org/fx"

	"github.com/guidesmith/guidesmith/internal/assets"
	"github.com/guidesmith/guidesmith/internal/generation"
	"github.com/guidesmith/guidesmith/internal/retrieval"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/tracer"
)

// FXModule wires the pipeline service against its concrete stages.
var FXModule = fx.Module("pipeline",
	fx.Provide(
		func(r *retrieval.Retriever, g *generation.Client, a *assets.Attacher, t *tracer.Tracer, m *metrics.Metrics, log *logger.Logger) *Service {
			return NewService(r, g, a, t, m, log)
		},
	),
)
