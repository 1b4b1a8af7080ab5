package server

import (
	"context"

	"go.uber.org/fx"

	"github.com/guidesmith/guidesmith/internal/pipeline"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
)

// FXModule wires the HTTP server and binds it to the application
// lifecycle.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		func(cfg Config, svc *pipeline.Service, m *metrics.Metrics, log *logger.Logger) *Server {
			return NewServer(cfg, svc, m, log)
		},
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the listener on application start and
// drains it on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
