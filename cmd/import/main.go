package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/converter/capacitiesConverter"
	"goodreads_capacities_import/internal/externalApi/capacitiesApi"
	"goodreads_capacities_import/internal/lib/logger"
	"goodreads_capacities_import/internal/lib/throttle"
	"goodreads_capacities_import/internal/parser"
	"goodreads_capacities_import/internal/service/importService"
	"goodreads_capacities_import/internal/transport/console"
	"goodreads_capacities_import/utils"
)

const requiredVars = "CAPACITIES_API_TOKEN, CAPACITIES_SPACE_ID, CAPACITIES_STRUCTURE_ID"

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

	if err := cfg.RequireCredentials(true); err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		term.MissingCredentials(requiredVars)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = utils.WithRequestID(ctx)

	loaded, err := parser.NewGoodreadsParser(cfg).Load(ctx)
	if err != nil {
		slog.Error("load export", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("err", err.Error()))
		term.FatalInput(err)
		return 1
	}

	term.PrintLoadStats(loaded)
	term.PrintImportHeader(cfg.Capacities.SpaceID, cfg.Capacities.StructureID, len(loaded.Records))
	term.PrintPreview(loaded.Records, cfg.PreviewCount)

	choice, err := term.AskConfirmation(cfg.PreviewCount)
	if err != nil {
		slog.Error("read confirmation", slog.String("err", err.Error()))
		term.FatalInput(err)
		return 1
	}

	importer := importService.New(
		cfg,
		capacitiesApi.New(cfg),
		capacitiesConverter.New(cfg),
		throttle.NewFixed(cfg.Capacities.RequestDelay),
		term,
	)

	if _, err := importer.Run(ctx, loaded.Records, choice); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}

	term.ProcessCompleted()

	return 0
}
