package progress

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/models"
)

type Repository interface {
	MarkChapterRead(ctx context.Context, read *models.ChapterRead) (*models.ChapterRead, error)
	GetBookProgress(ctx context.Context, userID uuid.UUID) ([]*models.BookProgress, error)
	GetReadDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	SaveVerse(ctx context.Context, saved *models.SavedVerse) (*models.SavedVerse, error)
	UnsaveVerse(ctx context.Context, userID uuid.UUID, savedID uuid.UUID) error
	ListSavedVerses(ctx context.Context, userID uuid.UUID) ([]*models.SavedVerse, error)
}
