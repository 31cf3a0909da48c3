package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the fieldsync command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fieldsync",
		Short:         "Synchronization and consensus core for field operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewSweepCommand())
	cmd.AddCommand(NewMigrateCommand())

	return cmd
}
