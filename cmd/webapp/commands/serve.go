package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eridiumdev/clickpay-web/internal/app"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web gateway (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	a, err := app.NewWebApp(ctx, cfg, log)
	if err != nil {
		return log.Wrap(err, "init app")
	}

	runErr := make(chan error, 1)
	go func() {
		log.Info(ctx).Msg("Starting app...")
		runErr <- a.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info(ctx).Msgf("OS signal received: %s", sig)
	case err := <-runErr:
		if err != nil {
			return log.Wrap(err, "run app")
		}
		return errors.New("server stopped unexpectedly")
	}

	force := time.AfterFunc(cfg.App.ShutdownTimeout, func() {
		log.Fatal(ctx, errors.New("shutdown timeout")).Msg("App force-stopped")
	})
	defer force.Stop()

	stopCtx, cancel := context.WithTimeout(ctx, cfg.App.ShutdownTimeout)
	defer cancel()

	log.Info(ctx).Msg("Stopping app...")
	err = a.Stop(stopCtx)
	if err != nil {
		return log.Wrap(err, "stop app")
	}

	log.Info(ctx).Msg("App stopped")
	return nil
}
