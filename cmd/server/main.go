// Command server runs the guide generation API: question in, structured
// illustrated how-to guide out.
package main

import (
	"go.uber.org/fx"

	"github.com/guidesmith/guidesmith/internal/assets"
	"github.com/guidesmith/guidesmith/internal/generation"
	"github.com/guidesmith/guidesmith/internal/pipeline"
	"github.com/guidesmith/guidesmith/internal/retrieval"
	"github.com/guidesmith/guidesmith/internal/server"
	"github.com/guidesmith/guidesmith/pkg/embedding"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/qdrant"
	"github.com/guidesmith/guidesmith/pkg/tracer"
)

func main() {
	fx.New(
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		embedding.FXModule,
		qdrant.FXModule,
		retrieval.FXModule,
		generation.FXModule,
		assets.FXModule,
		pipeline.FXModule,
		server.FXModule,
	).Run()
}
