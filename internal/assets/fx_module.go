package assets

import (
	"go.uber.org/fx"
)

// FXModule wires the asset store, image provider, and attacher into Fx.
var FXModule = fx.Module("assets",
	fx.Provide(
		NewConfig,
		NewStore,
		NewProvider,
		NewAttacher,
	),
)
