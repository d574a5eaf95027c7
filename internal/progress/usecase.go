package progress

import (
	"context"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/models"
)

type UseCase interface {
	MarkChapterRead(ctx context.Context, userID uuid.UUID, bookNumber, chapter int) (*models.ChapterRead, error)
	GetProgress(ctx context.Context, userID uuid.UUID) ([]*models.BookProgress, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (*models.StreakSummary, error)
	SaveVerse(ctx context.Context, userID uuid.UUID, saved *models.SavedVerse) (*models.SavedVerse, error)
	UnsaveVerse(ctx context.Context, userID uuid.UUID, savedID uuid.UUID) error
	ListSavedVerses(ctx context.Context, userID uuid.UUID) ([]*models.SavedVerse, error)
}
