package models

import (
	"time"

	"github.com/google/uuid"
)

type VideoStatus string

const (
	VideoStatusGenerating VideoStatus = "generating"
	VideoStatusCompleted  VideoStatus = "completed"
	VideoStatusFailed     VideoStatus = "failed"
)

// IsTerminal reports whether no further transitions are permitted.
func (s VideoStatus) IsTerminal() bool {
	return s == VideoStatusCompleted || s == VideoStatusFailed
}

// ChapterVideo is the durable record of one video-production attempt,
// unique per (book_number, chapter).
type ChapterVideo struct {
	VideoID         uuid.UUID   `json:"video_id" db:"video_id" redis:"video_id"`
	BookNumber      int         `json:"book_number" db:"book_number" redis:"book_number" validate:"required,min=1,max=66"`
	Chapter         int         `json:"chapter" db:"chapter" redis:"chapter" validate:"required,min=1"`
	Status          VideoStatus `json:"status" db:"status" redis:"status"`
	Script          string      `json:"script" db:"script" redis:"script"`
	VeoTaskID       *string     `json:"veo_task_id" db:"veo_task_id" redis:"veo_task_id"`
	VideoURL        *string     `json:"video_url" db:"video_url" redis:"video_url"`
	StorageKey      *string     `json:"storage_key" db:"storage_key" redis:"storage_key"`
	ErrorMessage    *string     `json:"error_message" db:"error_message" redis:"error_message"`
	DurationSeconds *int        `json:"duration_seconds" db:"duration_seconds" redis:"duration_seconds"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at" redis:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at" redis:"updated_at"`
}

type VideoRequestInput struct {
	BookNumber int `json:"book_number" validate:"required,min=1,max=66"`
	Chapter    int `json:"chapter" validate:"required,min=1"`
}
