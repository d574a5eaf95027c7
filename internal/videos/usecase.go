package videos

import (
	"context"

	"github.com/scripturecast/scripture-backend/internal/models"
)

type UseCase interface {
	// RequestVideo is idempotent per (book, chapter): a stored completed or
	// generating job is returned as-is, a failed one is retried, and only an
	// absent key triggers production. It returns once the job is persisted;
	// it never blocks for full completion.
	RequestVideo(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error)

	// GetVideoStatus returns the stored job, refreshing a generating one with
	// a single provider status check. ErrVideoNotFound on miss.
	GetVideoStatus(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error)

	// GetPlaybackURL resolves a completed job to a playable URL, presigning
	// the mirrored object when one exists.
	GetPlaybackURL(ctx context.Context, bookNumber, chapter int) (string, error)
}
