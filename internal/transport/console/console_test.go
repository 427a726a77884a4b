package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"goodreads_capacities_import/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		answer string
		want   model.ConfirmationChoice
	}{
		{"y", model.ChoiceFull},
		{"yes", model.ChoiceFull},
		{" YES \n", model.ChoiceFull},
		{"test", model.ChoiceTestSubset},
		{"Test\n", model.ChoiceTestSubset},
		{"n", model.ChoiceCancel},
		{"", model.ChoiceCancel},
		{"yep", model.ChoiceCancel},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChoice(tt.answer))
		})
	}
}

func TestAskConfirmation(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("test\n"), &out)

	choice, err := c.AskConfirmation(10)

	require.NoError(t, err)
	assert.Equal(t, model.ChoiceTestSubset, choice)
	assert.Contains(t, out.String(), "'test' for first 10 only")
}

func TestAskConfirmation_EndOfInputCancels(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})

	choice, err := c.AskConfirmation(10)

	require.NoError(t, err)
	assert.Equal(t, model.ChoiceCancel, choice)
}

func TestAskConfirmation_AnswerWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("yes"), &bytes.Buffer{})

	choice, err := c.AskConfirmation(10)

	require.NoError(t, err)
	assert.Equal(t, model.ChoiceFull, choice)
}

func TestPrintLoadStats(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.PrintLoadStats(model.LoadResult{Records: make([]model.BookRecord, 2), Total: 3, Skipped: 1})

	assert.Equal(t, "Total books in export: 3\nBooks you've read: 2\nSkipping 1 unread books\n\n", out.String())
}

func TestPrintPreview(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	records := []model.BookRecord{
		{
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			ISBN13:      `="9780141439518"`,
			Rating:      5,
			Pages:       intPtr(279),
			Publisher:   "Penguin",
			DateRead:    "2023/04/15",
			Bookshelves: "classics",
			Review:      "Witty.",
		},
		{
			Title:  "Dune",
			Author: "Frank Herbert",
		},
		{
			Title: "Not previewed",
		},
	}

	c.PrintPreview(records, 2)

	expected := "📋 Preview of first 2 books to be imported:\n\n" +
		"Book #1: Pride and Prejudice\n" +
		"  Author: Jane Austen\n" +
		"  ISBN: 9780141439518\n" +
		"  Rating: 5\n" +
		"  Pages: 279\n" +
		"  Date Read: 2023/04/15\n" +
		"  Publisher: Penguin\n" +
		"  Bookshelves: classics\n" +
		"  Review: Yes\n" +
		dash50 + "\n" +
		"Book #2: Dune\n" +
		"  Author: Frank Herbert\n" +
		"  ISBN: \n" +
		"  Rating: No rating\n" +
		"  Pages: Unknown\n" +
		"  Date Read: Not read\n" +
		"  Publisher: Unknown\n" +
		"  Bookshelves: None\n" +
		"  Review: No\n" +
		dash50 + "\n"
	assert.Equal(t, expected, out.String())
}

func TestImportProgressLines(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Imported(1, 3, "Dune")
	c.Failed("Emma", 500, "boom")
	c.Errored("Ulysses", errors.New("timeout"))
	c.Warning("Could not parse date 'x' for Dune")

	assert.Equal(t,
		"[1/3] Successfully imported: Dune\n"+
			"FAILED Emma: 500 - boom\n"+
			"Error on Ulysses: timeout\n"+
			"Warning: Could not parse date 'x' for Dune\n",
		out.String())
}

func TestImportStarted(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.ImportStarted(model.ChoiceTestSubset, 10)
	c.ImportStarted(model.ChoiceFull, 42)
	c.ImportStarted(model.ChoiceCancel, 0)

	assert.Equal(t,
		"\n🧪 Test mode: Importing first 10 books only...\n"+
			"\n🚀 Starting full import...\n"+
			"\n❌ Import cancelled.\n",
		out.String())
}

func TestPrintSpaceInfo(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.PrintSpaceInfo(model.SpaceInfo{Structures: []model.Structure{
		{ID: "s1", Title: "Page", PluralName: "Pages"},
		{ID: "s2", Title: "Book", PluralName: "Books", PropertyDefinitions: []model.PropertyDefinition{
			{ID: "p1", Name: "Author", DataType: "string"},
		}},
	}})

	text := out.String()
	assert.Contains(t, text, "Found 2 structure(s)")
	assert.Contains(t, text, "🏗️  Structure: Page\n   ID: s1\n   Plural: Pages\n   📝 No properties found\n")
	assert.Contains(t, text, "   📝 1 Properties:\n      - Author (string)\n        ID: p1\n")
}

func TestPrintSpaceInfo_Empty(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.PrintSpaceInfo(model.SpaceInfo{})

	assert.Contains(t, out.String(), "No structures found in this space")
}

func TestPrintBookMappings(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.PrintBookMappings("s2", []model.PropertyMapping{
		{Key: "author", ID: "p1", EnvKey: "CAPACITIES_PROP_AUTHOR"},
		{Key: "series_name", ID: "p9"},
	})

	text := out.String()
	assert.Contains(t, text, "Structure ID: s2\n")
	assert.Contains(t, text, "\"author\": \"p1\",\n\"series_name\": \"p9\",\n")
	assert.Contains(t, text, "CAPACITIES_STRUCTURE_ID=s2\nCAPACITIES_PROP_AUTHOR=p1\n")
	assert.NotContains(t, text, "=p9")
}
