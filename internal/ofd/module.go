package ofd

import (
	"context"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"ofd",
		fx.Provide(NewClient),
		fx.Invoke(func(lc fx.Lifecycle, client *Client) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					client.Close()
					return nil
				},
			})
		}),
	)
}
