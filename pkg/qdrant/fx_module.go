package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

// FXModule wires the Qdrant client into Fx and bootstraps the configured
// collection on startup when the server is reachable.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle bootstraps the collection on start and closes the
// client on stop. The index is advisory, so a failed bootstrap is logged
// and the application starts anyway; retrieval degrades per request until
// the server recovers.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.EnsureCollection(ctx); err != nil {
				log.Warn("qdrant collection bootstrap failed, continuing without index", err, map[string]interface{}{
					"collection": client.Collection(),
				})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
