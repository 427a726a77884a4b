package capacitiesConverter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/model"
	"goodreads_capacities_import/utils"
)

const (
	dateReadLayout   = "2006-1-2"
	dateOutputLayout = "2006-01-02"
)

// CleanISBN strips the ="..." wrapper Goodreads puts around ISBNs so that
// spreadsheets keep them as text.
func CleanISBN(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ReplaceAll(raw, `="`, ""), `"`, "")
}

// NormalizeDate turns a Goodreads date such as 2023/04/15 into 2023-04-15.
func NormalizeDate(raw string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
	t, err := time.Parse(dateReadLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(dateOutputLayout), nil
}

// Notes merges the review and the private notes into one text.
func Notes(review, privateNotes string) string {
	notes := ""
	if !isBlank(review) {
		notes = review
	}

	if !isBlank(privateNotes) {
		if notes != "" {
			notes = fmt.Sprintf("%s\n\nPrivate Notes:\n%s", notes, privateNotes)
		} else {
			notes = fmt.Sprintf("Private Notes:\n%s", privateNotes)
		}
	}

	return notes
}

// Description puts the shelves first and merges the publication year in after.
func Description(bookshelves string, yearPublished *int) string {
	description := ""
	if !isBlank(bookshelves) {
		description = "Bookshelves: " + bookshelves
	}

	if yearPublished != nil {
		published := "Published: " + strconv.Itoa(*yearPublished)
		if description == "" {
			description = published
		} else {
			description += " | " + published
		}
	}

	return description
}

type Converter struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Converter {
	return &Converter{cfg: cfg}
}

// Convert maps one Goodreads row onto the Book structure properties.
// A date that cannot be read is dropped with a warning; the rest of the
// record is still converted.
func (c *Converter) Convert(ctx context.Context, rec model.BookRecord) model.ImportPayload {
	op := "Converter.Convert"
	rqID := utils.GetRequestIDFromCtx(ctx)
	props := c.cfg.Properties

	payload := model.ImportPayload{
		SpaceID:     c.cfg.Capacities.SpaceID,
		StructureID: c.cfg.Capacities.StructureID,
		Title:       rec.Title,
	}

	payload.Set(props.Author, optionalString(rec.Author))
	payload.Set(props.ISBN, optionalString(CleanISBN(rec.ISBN13)))
	if rec.Rating > 0 {
		payload.Set(props.Rating, model.IntValue(rec.Rating))
	} else {
		payload.Set(props.Rating, model.AbsentValue())
	}
	payload.Set(props.Publisher, optionalString(rec.Publisher))
	payload.Set(props.Pages, optionalInt(rec.Pages))

	if !isBlank(rec.DateRead) {
		date, err := NormalizeDate(rec.DateRead)
		if err != nil {
			warning := fmt.Sprintf("Could not parse date '%s' for %s", rec.DateRead, rec.Title)
			payload.Warnings = append(payload.Warnings, warning)
			slog.Warn(
				"Date read dropped",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.Int("row", rec.Row),
				slog.String("dateRead", rec.DateRead),
				slog.String("err", err.Error()),
			)
		} else {
			payload.Set(props.DateRead, model.StringValue(date))
		}
	}

	if notes := Notes(rec.Review, rec.PrivateNotes); notes != "" {
		payload.Set(props.Notes, model.StringValue(notes))
	}

	if description := Description(rec.Bookshelves, rec.YearPublished); description != "" {
		payload.Set(props.Description, model.StringValue(description))
	}

	return payload
}

func optionalString(s string) model.PropertyValue {
	if s == "" {
		return model.AbsentValue()
	}
	return model.StringValue(s)
}

func optionalInt(n *int) model.PropertyValue {
	if n == nil {
		return model.AbsentValue()
	}
	return model.IntValue(*n)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
