package model

import "strings"

// BookRecord is one row of the Goodreads library export.
// Empty strings mean the cell was empty.
type BookRecord struct {
	Row           int
	Title         string
	Author        string
	ISBN13        string
	Rating        int
	Pages         *int
	Publisher     string
	DateRead      string
	Bookshelves   string
	Review        string
	PrivateNotes  string
	YearPublished *int
}

// IsRead reports whether the book was actually read: it has a read date or
// the reader rated it.
func (b BookRecord) IsRead() bool {
	return strings.TrimSpace(b.DateRead) != "" || b.Rating > 0
}

func (b BookRecord) HasReview() bool {
	return strings.TrimSpace(b.Review) != ""
}

type LoadResult struct {
	Records []BookRecord
	Total   int
	Skipped int
}

type ImportSummary struct {
	Total    int
	Imported int
	Failed   int
	Errored  int
}
