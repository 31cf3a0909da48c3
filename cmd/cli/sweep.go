package cli

import (
	"context"
	"fmt"

	"fieldsync/cmd/bootstrap"
	"fieldsync/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewSweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired idempotency keys and expire overdue exit requests",
		Long: `Run one maintenance pass and exit.

The same pass runs periodically inside "serve" when SWEEP_ENABLED is true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd)
		},
	}
}

func runSweep(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var maint commands.MaintenanceCommands
	app := fx.New(
		bootstrap.CoreModule,
		fx.Populate(&maint),
		fx.NopLogger,
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()

	report, err := maint.Sweep(ctx)
	fmt.Fprintf(cmd.OutOrStdout(), "idempotency keys deleted: %d\nexit requests expired: %d\n",
		report.IdempotencyKeysDeleted, report.ExitRequestsExpired)
	return err
}
