package internal

import (
	"context"

	"ofd_import/internal/cli"
	"ofd_import/internal/config"
	"ofd_import/internal/logging"
	"ofd_import/internal/ofd"
	"ofd_import/internal/source"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		ofd.Module(),
		source.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}
