package main

import (
	"log/slog"
	"os"

	root "github.com/dinerozz/snippet-analytics-backend/cmd/root"
	"github.com/dinerozz/snippet-analytics-backend/config"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	config := config.LoadConfig()

	logger := setupLogger(config.Env)
	slog.SetDefault(logger)

	utils.SetLocation(config.Analytics.Timezone)
	utils.SetJWTSecret(config.Auth.JWTSecret)

	logger.Info("starting snippet analytics backend", slog.String("env", config.Env))

	cmd := root.GetRootCmd(config, logger)
	if len(os.Args) == 1 {
		cmd.SetArgs([]string{"serve"})
	}

	if err := cmd.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
