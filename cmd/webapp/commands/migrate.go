package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository"
)

func migrateCmd() *cobra.Command {
	var (
		down   int
		status bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the redirect audit log schema to PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch {
			case status:
				// Reported below
			case down > 0:
				if err := repository.Rollback(ctx, cfg.PostgreSQL, down); err != nil {
					return log.Wrap(err, "rollback")
				}
			default:
				if err := repository.Migrate(ctx, cfg.PostgreSQL); err != nil {
					return log.Wrap(err, "migrate")
				}
			}

			version, dirty, err := repository.MigrationVersion(ctx, cfg.PostgreSQL)
			if err != nil {
				return log.Wrap(err, "schema version")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "revert this many migrations instead of applying")
	cmd.Flags().BoolVar(&status, "status", false, "only print the schema version")

	return cmd
}
