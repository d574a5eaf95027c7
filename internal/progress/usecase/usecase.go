package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/progress"
	"github.com/scripturecast/scripture-backend/pkg/logger"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type progressUC struct {
	cfg          *config.Config
	progressRepo progress.Repository
	logger       logger.Logger
}

func NewProgressUseCase(cfg *config.Config, progressRepo progress.Repository, log logger.Logger) progress.UseCase {
	return &progressUC{
		cfg:          cfg,
		progressRepo: progressRepo,
		logger:       log,
	}
}

func (u *progressUC) MarkChapterRead(ctx context.Context, userID uuid.UUID, bookNumber, chapter int) (*models.ChapterRead, error) {
	read := &models.ChapterRead{
		UserID:     userID,
		BookNumber: bookNumber,
		Chapter:    chapter,
	}
	if err := utils.ValidateStruct(ctx, read); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	return u.progressRepo.MarkChapterRead(ctx, read)
}

func (u *progressUC) GetProgress(ctx context.Context, userID uuid.UUID) ([]*models.BookProgress, error) {
	books, err := u.progressRepo.GetBookProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.TotalChapters > 0 {
			b.Percentage = float64(b.ChaptersRead) / float64(b.TotalChapters) * 100
		}
	}
	return books, nil
}

func (u *progressUC) GetStreak(ctx context.Context, userID uuid.UUID) (*models.StreakSummary, error) {
	days, err := u.progressRepo.GetReadDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ComputeStreak(days, time.Now().UTC()), nil
}

func (u *progressUC) SaveVerse(ctx context.Context, userID uuid.UUID, saved *models.SavedVerse) (*models.SavedVerse, error) {
	saved.UserID = userID
	if err := utils.ValidateStruct(ctx, saved); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	return u.progressRepo.SaveVerse(ctx, saved)
}

func (u *progressUC) UnsaveVerse(ctx context.Context, userID uuid.UUID, savedID uuid.UUID) error {
	return u.progressRepo.UnsaveVerse(ctx, userID, savedID)
}

func (u *progressUC) ListSavedVerses(ctx context.Context, userID uuid.UUID) ([]*models.SavedVerse, error) {
	return u.progressRepo.ListSavedVerses(ctx, userID)
}

// ComputeStreak derives streak numbers from the distinct days a user has
// read, newest first. A current streak survives until the user misses a
// full calendar day, so reading yesterday but not yet today still counts.
func ComputeStreak(days []time.Time, now time.Time) *models.StreakSummary {
	summary := &models.StreakSummary{}
	if len(days) == 0 {
		return summary
	}

	normalized := make([]time.Time, len(days))
	for i, d := range days {
		normalized[i] = truncateDay(d)
	}
	summary.TotalDaysRead = len(normalized)
	last := days[0]
	summary.LastReadDate = &last

	today := truncateDay(now)
	if diff := daysBetween(normalized[0], today); diff <= 1 {
		summary.CurrentStreak = 1
		for i := 1; i < len(normalized); i++ {
			if daysBetween(normalized[i], normalized[i-1]) != 1 {
				break
			}
			summary.CurrentStreak++
		}
	}

	longest, run := 1, 1
	for i := 1; i < len(normalized); i++ {
		if daysBetween(normalized[i], normalized[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	summary.LongestStreak = longest
	return summary
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
