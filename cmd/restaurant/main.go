package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/restaurant-inventory/internal/app"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx, "❌ failed to init app", logger.ErrorF(err))
		os.Exit(1) //nolint:gocritic
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ app stopped with error", logger.ErrorF(err))
		stop()
		os.Exit(1)
	}
}
