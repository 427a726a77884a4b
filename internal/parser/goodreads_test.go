package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type goodreadsParserSuite struct {
	suite.Suite

	cfg    *config.Config
	parser *GoodreadsParser
}

func TestGoodreadsParserSuite(t *testing.T) {
	suite.Run(t, new(goodreadsParserSuite))
}

func (s *goodreadsParserSuite) SetupTest() {
	s.cfg = &config.Config{CsvPath: filepath.Join(s.T().TempDir(), "goodreads_library_export.csv")}
	s.parser = NewGoodreadsParser(s.cfg)
}

func (s *goodreadsParserSuite) writeExport(content string) {
	require.NoError(s.T(), os.WriteFile(s.cfg.CsvPath, []byte(content), 0o600))
}

func intPtr(n int) *int {
	return &n
}

func (s *goodreadsParserSuite) Test_Load_KeepsReadBooksOnly() {
	s.writeExport(threeRowsExport)

	res, err := s.parser.Load(context.Background())

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, res.Total)
	assert.Equal(s.T(), 1, res.Skipped)
	require.Len(s.T(), res.Records, 2)
	assert.Equal(s.T(), "Dune", res.Records[0].Title)
	assert.Equal(s.T(), "Pride and Prejudice", res.Records[1].Title)
}

func (s *goodreadsParserSuite) Test_Load_RecordFields() {
	s.writeExport(threeRowsExport)

	res, err := s.parser.Load(context.Background())
	require.NoError(s.T(), err)

	expected := model.BookRecord{
		Row:           3,
		Title:         "Pride and Prejudice",
		Author:        "Jane Austen",
		ISBN13:        `="9780141439518"`,
		Rating:        0,
		Pages:         intPtr(279),
		Publisher:     "Penguin",
		DateRead:      "2023/04/15",
		Bookshelves:   "classics",
		Review:        "Witty, sharp.",
		PrivateNotes:  "Reread in summer",
		YearPublished: intPtr(2002),
	}
	assert.Equal(s.T(), expected, res.Records[1])
}

func (s *goodreadsParserSuite) Test_Load_DefaultsBookshelfToRead() {
	s.writeExport(threeRowsExport)

	res, err := s.parser.Load(context.Background())
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "Read", res.Records[0].Bookshelves)
	assert.Equal(s.T(), 4, res.Records[0].Rating)
	assert.Empty(s.T(), res.Records[0].DateRead)
}

func (s *goodreadsParserSuite) Test_Load_FileNotFound() {
	_, err := s.parser.Load(context.Background())

	assert.ErrorIs(s.T(), err, os.ErrNotExist)
}

func (s *goodreadsParserSuite) Test_Load_MissingColumns() {
	s.writeExport(missingColumnsExport)

	_, err := s.parser.Load(context.Background())

	assert.ErrorIs(s.T(), err, ErrMissingColumn)
	assert.Contains(s.T(), err.Error(), "ISBN13")
	assert.Contains(s.T(), err.Error(), "Year Published")
}

func (s *goodreadsParserSuite) Test_Parse_MalformedNumber() {
	_, err := s.parser.Parse(context.Background(), strings.NewReader(malformedRatingExport))

	assert.ErrorIs(s.T(), err, ErrMalformedValue)
	assert.Contains(s.T(), err.Error(), "row 1")
	assert.Contains(s.T(), err.Error(), "My Rating")
}

func (s *goodreadsParserSuite) Test_Parse_EmptyFile() {
	_, err := s.parser.Parse(context.Background(), strings.NewReader(""))

	assert.ErrorIs(s.T(), err, ErrEmptyFile)
}

func (s *goodreadsParserSuite) Test_Parse_HeaderOnly() {
	res, err := s.parser.Parse(context.Background(), strings.NewReader(headerOnlyExport))

	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.LoadResult{}, res)
}

func (s *goodreadsParserSuite) Test_Parse_ByteOrderMark() {
	res, err := s.parser.Parse(context.Background(), strings.NewReader(bomExport))

	require.NoError(s.T(), err)
	require.Len(s.T(), res.Records, 1)
	assert.Equal(s.T(), "Dune", res.Records[0].Title)
}

func TestParse_RetainsExactlyReadRows(t *testing.T) {
	p := NewGoodreadsParser(&config.Config{})

	rows := []struct {
		rating   string
		dateRead string
		shelves  string
	}{
		{"0", "", ""},
		{"1", "", ""},
		{"5", "2020/01/01", "fav"},
		{"0", "2019/12/31", ""},
		{"", "", "to-read"},
		{"0", "   ", ""},
		{"3.0", "", "Read"},
	}

	var b strings.Builder
	b.WriteString("Title,Author,ISBN13,My Rating,Number of Pages,Date Read,Publisher,Bookshelves,My Review,Private Notes,Year Published\n")
	for i, r := range rows {
		b.WriteString(strings.Join([]string{"Book " + string(rune('A'+i)), "", "", r.rating, "", r.dateRead, "", r.shelves, "", "", ""}, ","))
		b.WriteString("\n")
	}

	res, err := p.Parse(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)

	var kept []string
	for _, rec := range res.Records {
		kept = append(kept, rec.Title)
		assert.True(t, rec.IsRead())
		assert.NotEmpty(t, rec.Bookshelves)
	}

	assert.Equal(t, []string{"Book B", "Book C", "Book D", "Book G"}, kept)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, "Read", res.Records[0].Bookshelves)
	assert.Equal(t, "fav", res.Records[1].Bookshelves)
}
