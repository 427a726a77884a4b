package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"goodreads_capacities_import/internal/converter/capacitiesConverter"
	"goodreads_capacities_import/internal/model"
)

// Console is the operator terminal: everything the tools tell the human goes
// through it, and the import confirmation is read from it.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// ParseChoice maps an answer to the import prompt onto a choice.
// Anything unrecognised cancels.
func ParseChoice(answer string) model.ConfirmationChoice {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return model.ChoiceFull
	case "test":
		return model.ChoiceTestSubset
	default:
		return model.ChoiceCancel
	}
}

func (c *Console) MissingCredentials(names string) {
	c.printf(missingCredentials, names)
}

func (c *Console) FatalInput(err error) {
	c.printf(fatalInput, err)
}

func (c *Console) PrintLoadStats(res model.LoadResult) {
	c.printf(loadStats, res.Total, len(res.Records), res.Skipped)
}

func (c *Console) PrintImportHeader(spaceID, structureID string, total int) {
	c.printf(importHeader, spaceID, structureID, total)
	c.println("\n" + rule50)
}

// PrintPreview shows the first n records the way they will be imported.
func (c *Console) PrintPreview(records []model.BookRecord, n int) {
	c.printf(previewHeader, n)

	for i, rec := range records {
		if i >= n {
			break
		}

		rating := noRating
		if rec.Rating > 0 {
			rating = strconv.Itoa(rec.Rating)
		}

		pages := unknown
		if rec.Pages != nil {
			pages = strconv.Itoa(*rec.Pages)
		}

		dateRead := notRead
		if strings.TrimSpace(rec.DateRead) != "" {
			dateRead = rec.DateRead
		}

		review := "No"
		if rec.HasReview() {
			review = "Yes"
		}

		c.printf(
			previewBook,
			i+1,
			rec.Title,
			rec.Author,
			capacitiesConverter.CleanISBN(rec.ISBN13),
			rating,
			pages,
			dateRead,
			orDefault(rec.Publisher, unknown),
			orDefault(rec.Bookshelves, noShelves),
			review,
		)
		c.println(dash50)
	}
}

// AskConfirmation prompts for the import mode. End of input cancels.
func (c *Console) AskConfirmation(testCount int) (model.ConfirmationChoice, error) {
	c.printf(confirmPrompt, testCount)

	answer, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return model.ChoiceCancel, fmt.Errorf("read answer: %w", err)
	}

	return ParseChoice(answer), nil
}

func (c *Console) ImportStarted(choice model.ConfirmationChoice, count int) {
	switch choice {
	case model.ChoiceFull:
		c.printf(fullImport)
	case model.ChoiceTestSubset:
		c.printf(testMode, count)
	default:
		c.printf(cancelled)
	}
}

func (c *Console) Imported(index, total int, title string) {
	c.printf(importedBook, index, total, title)
}

func (c *Console) Failed(title string, status int, body string) {
	c.printf(failedBook, title, status, body)
}

func (c *Console) Errored(title string, err error) {
	c.printf(erroredBook, title, err)
}

func (c *Console) Warning(msg string) {
	c.printf(warning, msg)
}

func (c *Console) Interrupted(err error) {
	c.printf(interrupted, err)
}

func (c *Console) ImportFinished(summary model.ImportSummary) {
	c.printf(importSummary, summary.Imported, summary.Failed, summary.Errored, summary.Total)
}

func (c *Console) ProcessCompleted() {
	c.println("\n" + rule50)
	c.printf(processCompleted)
}

func (c *Console) FinderHeader() {
	c.printf(finderHeader)
	c.println(rule60)
}

// PrintSpaceInfo lists every structure of the space with its properties.
func (c *Console) PrintSpaceInfo(info model.SpaceInfo) {
	c.printf(spaceInfoRetrieved)
	c.println(rule60)

	if len(info.Structures) == 0 {
		c.printf(noStructures)
		return
	}

	c.printf(structuresFound, len(info.Structures))
	for _, st := range info.Structures {
		c.printf(structureDetails, orDefault(st.Title, unknown), orDefault(st.ID, unknown), orDefault(st.PluralName, unknown))

		if len(st.PropertyDefinitions) == 0 {
			c.printf(noProperties)
		} else {
			c.printf(propertiesFound, len(st.PropertyDefinitions))
			for _, prop := range st.PropertyDefinitions {
				c.printf(propertyDetails, orDefault(prop.Name, unknown), orDefault(prop.DataType, unknown), orDefault(prop.ID, unknown))
			}
		}
		c.println("")
	}
}

// PrintBookMappings prints the ids of the Book structure ready to paste.
func (c *Console) PrintBookMappings(structureID string, mappings []model.PropertyMapping) {
	c.println("\n" + rule60)
	c.printf(bookDetails)
	c.println(rule60)
	c.printf(bookStructureID, structureID)
	c.printf(propertyIDsHeader)
	c.println(dash60)
	for _, m := range mappings {
		c.printf(propertyIDLine, m.Key, m.ID)
	}

	c.printf(envLinesHeader)
	c.println(dash60)
	c.printf(envLine, "CAPACITIES_STRUCTURE_ID", structureID)
	for _, m := range mappings {
		if m.EnvKey != "" {
			c.printf(envLine, m.EnvKey, m.ID)
		}
	}
}

func (c *Console) ApiError(status int, body string) {
	c.printf(apiError, status, body)
}

func (c *Console) ApiException(err error) {
	c.printf(apiException, err)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
