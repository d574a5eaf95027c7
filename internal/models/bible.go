package models

import "github.com/google/uuid"

type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

type BibleBook struct {
	BookID     uuid.UUID `json:"book_id" db:"book_id"`
	BookNumber int       `json:"book_number" db:"book_number"`
	Name       string    `json:"name" db:"name"`
	Abbrev     string    `json:"abbrev" db:"abbrev"`
	Chapters   int       `json:"chapters" db:"chapters"`
	Testament  Testament `json:"testament" db:"testament"`
}

type BibleVerse struct {
	VerseID    uuid.UUID `json:"verse_id" db:"verse_id"`
	BookNumber int       `json:"book_number" db:"book_number"`
	Chapter    int       `json:"chapter" db:"chapter"`
	Verse      int       `json:"verse" db:"verse"`
	Text       string    `json:"text" db:"text"`
}

type VerseList struct {
	Verses     []*BibleVerse `json:"verses"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	HasMore    bool          `json:"has_more"`
}

type ImportResult struct {
	BooksMatched   int `json:"books_matched"`
	VersesImported int `json:"verses_imported"`
}
