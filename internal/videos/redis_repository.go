package videos

import (
	"context"

	"github.com/scripturecast/scripture-backend/internal/models"
)

// RedisRepository caches terminal chapter videos. Terminal rows are immutable,
// so cached copies can never go stale; generating rows are never cached.
type RedisRepository interface {
	GetVideo(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error)
	SetVideo(ctx context.Context, video *models.ChapterVideo) error
	DeleteVideo(ctx context.Context, bookNumber, chapter int) error
}
