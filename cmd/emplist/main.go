package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	emplistapp "emppayroll/internal/app/emplist"
	"emppayroll/internal/platform/config"
	"emppayroll/internal/platform/logging"
)

func main() {
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatal().Err(err).Str("file", *envFile).Msg("load env file failed")
	}
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, cfg.IsProduction())
	if err := cfg.ValidateBackend(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		logger.Fatal().Err(err).Msg("emplist stopped with error")
	}
	logger.Info().Msg("emplist stopped")
}

func run(ctx context.Context, cfg config.Config) error {
	app, err := emplistapp.New(ctx, cfg, log.Logger)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Run(ctx)
}
