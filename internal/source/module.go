package source

import (
	"ofd_import/internal/ofd"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"source",
		fx.Provide(func(client *ofd.Client, notifier Notifier, logger *zap.Logger) *Retriever {
			return NewRetriever(client, notifier, logger)
		}),
	)
}
