package cli

import (
	"context"
	"log/slog"

	"fieldsync/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the maintenance sweeper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := fx.New(bootstrap.Module)

	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start application", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
	return nil
}
