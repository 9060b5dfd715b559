package renderer

import "go.uber.org/fx"

// Module provides the renderer dependencies
var Module = fx.Module("renderer",
	fx.Provide(
		fx.Annotate(
			NewDocxRenderer,
			fx.As(new(Renderer)),
		),
	),
)
