package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/externalApi/capacitiesApi"
	"goodreads_capacities_import/internal/lib/logger"
	"goodreads_capacities_import/internal/service/discoveryService"
	"goodreads_capacities_import/internal/transport/console"
	"goodreads_capacities_import/utils"
)

const requiredVars = "CAPACITIES_API_TOKEN and CAPACITIES_SPACE_ID"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Printf("parse config error: %s", err)
		return 1
	}

	logger.Setup(cfg.LogLevel, os.Stderr)

	term := console.New(os.Stdin, os.Stdout)
	term.FinderHeader()

	if err := cfg.RequireCredentials(false); err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		term.MissingCredentials(requiredVars)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = utils.WithRequestID(ctx)

	// A failed lookup has already been printed; the tool still exits cleanly.
	discoveryService.New(capacitiesApi.New(cfg), term).Discover(ctx)

	return 0
}
