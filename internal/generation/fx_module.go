package generation

import (
	"go.uber.org/fx"
)

// FXModule wires the model client into Fx.
var FXModule = fx.Module("generation",
	fx.Provide(
		NewConfig,
		NewClient,
	),
)
