package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/model"
	"goodreads_capacities_import/utils"
)

// Goodreads export column names.
const (
	colTitle         = "Title"
	colAuthor        = "Author"
	colISBN13        = "ISBN13"
	colMyRating      = "My Rating"
	colPages         = "Number of Pages"
	colDateRead      = "Date Read"
	colPublisher     = "Publisher"
	colBookshelves   = "Bookshelves"
	colMyReview      = "My Review"
	colPrivateNotes  = "Private Notes"
	colYearPublished = "Year Published"
)

var requiredColumns = []string{
	colTitle, colAuthor, colISBN13, colMyRating, colPages, colDateRead,
	colPublisher, colBookshelves, colMyReview, colPrivateNotes, colYearPublished,
}

const defaultBookshelf = "Read"

type GoodreadsParser struct {
	cfg *config.Config
}

func NewGoodreadsParser(cfg *config.Config) *GoodreadsParser {
	return &GoodreadsParser{cfg: cfg}
}

// Load reads the export file configured in cfg.CsvPath.
func (g *GoodreadsParser) Load(ctx context.Context) (model.LoadResult, error) {
	op := "GoodreadsParser.Load"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Info("Load start", slog.String("rqID", rqID), slog.String("op", op), slog.String("path", g.cfg.CsvPath))

	f, err := os.Open(g.cfg.CsvPath)
	if err != nil {
		return model.LoadResult{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	res, err := g.Parse(ctx, f)
	if err != nil {
		return model.LoadResult{}, fmt.Errorf("parse %s: %w", g.cfg.CsvPath, err)
	}

	slog.Info(
		"Load finished",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.Int("total", res.Total),
		slog.Int("kept", len(res.Records)),
		slog.Int("skipped", res.Skipped),
	)

	return res, nil
}

// Parse reads every row from r and keeps the books that were actually read,
// in file order. Kept rows without a shelf are put on the "Read" shelf.
func (g *GoodreadsParser) Parse(ctx context.Context, r io.Reader) (model.LoadResult, error) {
	op := "GoodreadsParser.Parse"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return model.LoadResult{}, ErrEmptyFile
	}
	if err != nil {
		return model.LoadResult{}, fmt.Errorf("read header: %w", err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return model.LoadResult{}, err
	}

	var res model.LoadResult
	for row := 1; ; row++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.LoadResult{}, fmt.Errorf("read row %d: %w", row, err)
		}

		res.Total++

		rec, err := toRecord(row, cells, columns)
		if err != nil {
			return model.LoadResult{}, err
		}

		if !rec.IsRead() {
			res.Skipped++
			slog.Debug("Skip unread book", slog.String("rqID", rqID), slog.String("op", op), slog.Int("row", row), slog.String("title", rec.Title))
			continue
		}

		if rec.Bookshelves == "" {
			rec.Bookshelves = defaultBookshelf
		}

		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return columns, nil
}

func toRecord(row int, cells []string, columns map[string]int) (model.BookRecord, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(cells) {
			return ""
		}
		return cells[idx]
	}

	rating, err := parseNumber(cell(colMyRating))
	if err != nil {
		return model.BookRecord{}, fmt.Errorf("row %d, column %q: %w", row, colMyRating, err)
	}
	pages, err := parseNumber(cell(colPages))
	if err != nil {
		return model.BookRecord{}, fmt.Errorf("row %d, column %q: %w", row, colPages, err)
	}
	year, err := parseNumber(cell(colYearPublished))
	if err != nil {
		return model.BookRecord{}, fmt.Errorf("row %d, column %q: %w", row, colYearPublished, err)
	}

	rec := model.BookRecord{
		Row:           row,
		Title:         cell(colTitle),
		Author:        cell(colAuthor),
		ISBN13:        cell(colISBN13),
		Pages:         pages,
		Publisher:     cell(colPublisher),
		DateRead:      cell(colDateRead),
		Bookshelves:   cell(colBookshelves),
		Review:        cell(colMyReview),
		PrivateNotes:  cell(colPrivateNotes),
		YearPublished: year,
	}
	if rating != nil {
		rec.Rating = *rating
	}

	return rec, nil
}

// parseNumber accepts integer or float text ("352", "352.0"). Empty cells
// and NaN are absent.
func parseNumber(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}

	n := int(f)
	return &n, nil
}
