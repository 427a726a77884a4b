package importService

//go:generate mockgen -source=importService.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/externalApi/capacitiesApi"
	"goodreads_capacities_import/internal/model"
	"goodreads_capacities_import/utils"
)

type CapacitiesApi interface {
	CreateObject(ctx context.Context, object model.CreateObjectRequest) error
}

type Converter interface {
	Convert(ctx context.Context, rec model.BookRecord) model.ImportPayload
}

type Throttler interface {
	Wait(ctx context.Context) error
}

type Reporter interface {
	ImportStarted(choice model.ConfirmationChoice, count int)
	Imported(index, total int, title string)
	Failed(title string, status int, body string)
	Errored(title string, err error)
	Warning(msg string)
	Interrupted(err error)
	ImportFinished(summary model.ImportSummary)
}

type ImportService struct {
	cfg       *config.Config
	api       CapacitiesApi
	converter Converter
	throttler Throttler
	reporter  Reporter
}

func New(cfg *config.Config, api CapacitiesApi, converter Converter, throttler Throttler, reporter Reporter) *ImportService {
	return &ImportService{
		cfg:       cfg,
		api:       api,
		converter: converter,
		throttler: throttler,
		reporter:  reporter,
	}
}

// Run imports the records selected by the operator's choice: all of them,
// the first PreviewCount, or none.
func (s *ImportService) Run(ctx context.Context, records []model.BookRecord, choice model.ConfirmationChoice) (model.ImportSummary, error) {
	switch choice {
	case model.ChoiceFull:
		s.reporter.ImportStarted(choice, len(records))
		return s.Import(ctx, records)
	case model.ChoiceTestSubset:
		s.reporter.ImportStarted(choice, s.cfg.PreviewCount)
		subset := records
		if len(subset) > s.cfg.PreviewCount {
			subset = subset[:s.cfg.PreviewCount]
		}
		return s.Import(ctx, subset)
	default:
		s.reporter.ImportStarted(model.ChoiceCancel, 0)
		return model.ImportSummary{}, nil
	}
}

// Import posts the records one by one in order. A rejected or failed request
// is reported and the loop moves on; the throttler runs after every record.
// Only ctx cancellation stops the loop early.
func (s *ImportService) Import(ctx context.Context, records []model.BookRecord) (model.ImportSummary, error) {
	op := "ImportService.Import"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Info("Import start", slog.String("rqID", rqID), slog.String("op", op), slog.Int("records", len(records)))

	summary := model.ImportSummary{Total: len(records)}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			s.reporter.Interrupted(err)
			return summary, err
		}

		payload := s.converter.Convert(ctx, rec)
		for _, w := range payload.Warnings {
			s.reporter.Warning(w)
		}

		err := s.api.CreateObject(ctx, payload.Wire())

		var statusErr *capacitiesApi.StatusError
		switch {
		case err == nil:
			summary.Imported++
			s.reporter.Imported(i+1, len(records), rec.Title)
		case errors.As(err, &statusErr):
			summary.Failed++
			s.reporter.Failed(rec.Title, statusErr.Code, statusErr.Body)
			slog.Warn(
				"Object rejected",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.Int("row", rec.Row),
				slog.Int("status", statusErr.Code),
			)
		default:
			summary.Errored++
			s.reporter.Errored(rec.Title, err)
			slog.Error(
				"Object request failed",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.Int("row", rec.Row),
				slog.String("err", err.Error()),
			)
		}

		if err := s.throttler.Wait(ctx); err != nil {
			s.reporter.Interrupted(err)
			return summary, err
		}
	}

	s.reporter.ImportFinished(summary)

	slog.Info(
		"Import finished",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.Int("imported", summary.Imported),
		slog.Int("failed", summary.Failed),
		slog.Int("errored", summary.Errored),
	)

	return summary, nil
}
