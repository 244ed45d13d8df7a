package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	emplistapp "emppayroll/internal/app/emplist"
	"emppayroll/internal/app/server"
	"emppayroll/internal/platform/config"
	"emppayroll/internal/platform/logging"
)

func main() {
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	withBackend := flag.Bool("with-backend", false, "also run the EmpList backend on BACKEND_ADDR")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatal().Err(err).Str("file", *envFile).Msg("load env file failed")
	}
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, cfg.IsProduction())
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(rootCtx, cfg, *withBackend); err != nil {
		stop()
		logger.Fatal().Err(err).Msg("shutdown with error")
	}
}

func run(rootCtx context.Context, cfg config.Config, withBackend bool) error {
	logger := log.Logger
	app, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("ui init: %w", err)
	}

	group, gctx := errgroup.WithContext(rootCtx)

	if withBackend {
		if err := cfg.ValidateBackend(); err != nil {
			return fmt.Errorf("backend configuration: %w", err)
		}
		backend, err := emplistapp.New(rootCtx, cfg, logger)
		if err != nil {
			return fmt.Errorf("emplist init: %w", err)
		}
		defer backend.Close()

		group.Go(func() error {
			if err := backend.Run(gctx); err != nil {
				logger.Error().Err(err).Msg("emplist backend stopped with error")
				return err
			}
			logger.Info().Msg("emplist backend stopped")
			return nil
		})
	}

	group.Go(func() error {
		if err := app.Run(gctx); err != nil {
			logger.Error().Err(err).Msg("ui stopped with error")
			return err
		}
		logger.Info().Msg("ui stopped")
		return nil
	})

	return group.Wait()
}
