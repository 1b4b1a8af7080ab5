package objectstore

import (
	"go.uber.org/fx"
)

// FXModule wires the object store client into Fx.
var FXModule = fx.Module("objectstore",
	fx.Provide(
		NewConfig,
		NewClient,
	),
)
