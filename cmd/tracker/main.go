package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dnd-tracker/internal/config"
	"github.com/KirkDiggler/dnd-tracker/internal/logging"
	"github.com/KirkDiggler/dnd-tracker/internal/ui"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorText(err))
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorText(err))
		os.Exit(1)
	}
	if envErr != nil {
		logger.Debug("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:       cfg,
		log:       logger,
		openStore: openStore,
	}
	if err := execute(ctx, a, newRootCmd(a)); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorText(err))
		stop()
		os.Exit(1)
	}
}
