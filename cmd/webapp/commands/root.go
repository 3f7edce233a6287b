package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "webapp",
		Short:         "ClickPay web gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			log = logger.NewZerologLogger(cmd.Context(), "webapp", cfg.App.LogLevel, cfg.App.LogPretty, os.Stdout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(serveCmd(), migrateCmd())

	err := root.ExecuteContext(context.Background())
	if err != nil {
		if log != nil {
			log.Error(context.Background(), err).Msg("command failed")
		} else {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}
	return err
}
