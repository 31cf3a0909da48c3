package cli

import (
	"context"
	"fmt"

	"fieldsync/internal/pkg/config"
	"fieldsync/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

type migrateOptions struct {
	Dir       string
	AtlasPath string
	DryRun    bool
}

func NewMigrateCommand() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply the migration directory to the configured database through the atlas CLI.

Example:
  fieldsync migrate --dir file://migrations
  fieldsync migrate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runMigrate(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "file://migrations", "migration directory URL")
	cmd.Flags().StringVar(&opts.AtlasPath, "atlas", "atlas", "path to the atlas binary")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print pending migrations without applying them")

	return cmd
}

func runMigrate(ctx context.Context, cmd *cobra.Command, opts *migrateOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", opts.AtlasPath)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: opts.Dir,
		DryRun: opts.DryRun,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	out := cmd.OutOrStdout()
	for _, f := range res.Applied {
		fmt.Fprintf(out, "applied %s\n", f.Name)
	}
	fmt.Fprintf(out, "schema at version %q (%d applied)\n", res.Target, len(res.Applied))
	return nil
}
