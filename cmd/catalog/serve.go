package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/logger"
	"github.com/mytheresa/product-categories/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// serveCmd serves the catalog over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML catalog and the JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	c, err := loadCatalog(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("loading catalog")
		return err
	}

	srv := server.New(server.NewRouter(c, log), cfg.HTTP)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("http server started")
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
		return err
	}
	log.Info().Msg("stopped")
	return nil
}
