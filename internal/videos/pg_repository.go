package videos

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/models"
)

// Repository is the durable job store for chapter videos. The conditional
// writes below are the only concurrency control in the workflow: no caller
// ever holds a row lock across a network call.
type Repository interface {
	// GetByChapter returns (nil, nil) on miss; absence is a meaningful state,
	// not an error.
	GetByChapter(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error)

	// CreateGenerating atomically inserts a generating row, restarting a
	// failed one in place. A restart assigns a fresh VideoID, so marks still
	// addressed to the previous attempt's identity are no-ops. Returns
	// ErrAlreadyExists when the stored row is generating or completed.
	CreateGenerating(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error)

	// CreateFailed records a job that died before or at submit, with the same
	// conflict policy as CreateGenerating.
	CreateFailed(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error)

	// MarkCompleted and MarkFailed only apply while the row is generating;
	// otherwise they return ErrNotGenerating and change nothing.
	MarkCompleted(ctx context.Context, videoID uuid.UUID, videoURL, storageKey string, durationSeconds int) (*models.ChapterVideo, error)
	MarkFailed(ctx context.Context, videoID uuid.UUID, errorMessage string) (*models.ChapterVideo, error)

	// GetStaleGenerating lists generating rows not touched since the cutoff,
	// for the background watcher.
	GetStaleGenerating(ctx context.Context, olderThan time.Duration) ([]*models.ChapterVideo, error)
}
