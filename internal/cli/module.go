package cli

import (
	"ofd_import/internal/source"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"cli",
		fx.Provide(func() source.Notifier {
			return NewStderrNotifier()
		}),
		fx.Provide(NewRunner),
	)
}
