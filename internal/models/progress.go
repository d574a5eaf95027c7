package models

import (
	"time"

	"github.com/google/uuid"
)

type ChapterRead struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	BookNumber int       `json:"book_number" db:"book_number" validate:"required,min=1,max=66"`
	Chapter    int       `json:"chapter" db:"chapter" validate:"required,min=1"`
	ReadAt     time.Time `json:"read_at" db:"read_at"`
}

type BookProgress struct {
	BookNumber    int     `json:"book_number" db:"book_number"`
	Name          string  `json:"name" db:"name"`
	TotalChapters int     `json:"total_chapters" db:"total_chapters"`
	ChaptersRead  int     `json:"chapters_read" db:"chapters_read"`
	Percentage    float64 `json:"percentage"`
}

type StreakSummary struct {
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	TotalDaysRead int        `json:"total_days_read"`
	LastReadDate  *time.Time `json:"last_read_date"`
}

type SavedVerse struct {
	SavedID        uuid.UUID `json:"saved_id" db:"saved_id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	BookNumber     int       `json:"book_number" db:"book_number" validate:"required,min=1,max=66"`
	Chapter        int       `json:"chapter" db:"chapter" validate:"required,min=1"`
	Verse          int       `json:"verse" db:"verse" validate:"required,min=1"`
	Text           string    `json:"text" db:"text"`
	HighlightColor *string   `json:"highlight_color" db:"highlight_color"`
	SavedAt        time.Time `json:"saved_at" db:"saved_at"`
}
