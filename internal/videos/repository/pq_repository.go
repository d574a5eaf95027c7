package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
)

type videoRepo struct {
	db *sqlx.DB
}

func NewVideoRepo(db *sqlx.DB) videos.Repository {
	return &videoRepo{
		db: db,
	}
}

func (v *videoRepo) GetByChapter(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error) {
	video := &models.ChapterVideo{}
	if err := v.db.QueryRowxContext(
		ctx,
		getVideoByChapterQuery,
		bookNumber,
		chapter,
	).StructScan(video); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chapter video: %w", err)
	}
	return video, nil
}

func (v *videoRepo) CreateGenerating(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error) {
	created := &models.ChapterVideo{}
	if err := v.db.QueryRowxContext(
		ctx,
		createGeneratingQuery,
		video.BookNumber,
		video.Chapter,
		video.Script,
		video.VeoTaskID,
		video.DurationSeconds,
	).StructScan(created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create generating video: %w", err)
	}
	return created, nil
}

func (v *videoRepo) CreateFailed(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error) {
	created := &models.ChapterVideo{}
	if err := v.db.QueryRowxContext(
		ctx,
		createFailedQuery,
		video.BookNumber,
		video.Chapter,
		video.Script,
		video.ErrorMessage,
		video.DurationSeconds,
	).StructScan(created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create failed video: %w", err)
	}
	return created, nil
}

func (v *videoRepo) MarkCompleted(ctx context.Context, videoID uuid.UUID, videoURL, storageKey string, durationSeconds int) (*models.ChapterVideo, error) {
	updated := &models.ChapterVideo{}
	if err := v.db.QueryRowxContext(
		ctx,
		markCompletedQuery,
		videoID,
		videoURL,
		storageKey,
		durationSeconds,
	).StructScan(updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrNotGenerating
		}
		return nil, fmt.Errorf("failed to mark video completed: %w", err)
	}
	return updated, nil
}

func (v *videoRepo) MarkFailed(ctx context.Context, videoID uuid.UUID, errorMessage string) (*models.ChapterVideo, error) {
	updated := &models.ChapterVideo{}
	if err := v.db.QueryRowxContext(
		ctx,
		markFailedQuery,
		videoID,
		errorMessage,
	).StructScan(updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrNotGenerating
		}
		return nil, fmt.Errorf("failed to mark video failed: %w", err)
	}
	return updated, nil
}

func (v *videoRepo) GetStaleGenerating(ctx context.Context, olderThan time.Duration) ([]*models.ChapterVideo, error) {
	cutoff := time.Now().Add(-olderThan)
	rows, err := v.db.QueryxContext(ctx, getStaleGeneratingQuery, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale generating videos: %w", err)
	}
	defer rows.Close()
	var stale []*models.ChapterVideo
	for rows.Next() {
		var video models.ChapterVideo
		if err = rows.StructScan(&video); err != nil {
			return nil, fmt.Errorf("failed to scan chapter video: %w", err)
		}
		stale = append(stale, &video)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan chapter videos: %w", err)
	}
	return stale, nil
}
