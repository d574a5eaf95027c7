package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/progress"
)

type progressRepo struct {
	db *sqlx.DB
}

func NewProgressRepo(db *sqlx.DB) progress.Repository {
	return &progressRepo{
		db: db,
	}
}

func (r *progressRepo) MarkChapterRead(ctx context.Context, read *models.ChapterRead) (*models.ChapterRead, error) {
	marked := &models.ChapterRead{}
	if err := r.db.QueryRowxContext(
		ctx,
		markChapterReadQuery,
		read.UserID,
		read.BookNumber,
		read.Chapter,
	).StructScan(marked); err != nil {
		return nil, fmt.Errorf("failed to mark chapter read: %w", err)
	}
	return marked, nil
}

func (r *progressRepo) GetBookProgress(ctx context.Context, userID uuid.UUID) ([]*models.BookProgress, error) {
	rows, err := r.db.QueryxContext(ctx, getBookProgressQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get book progress: %w", err)
	}
	defer rows.Close()
	var books []*models.BookProgress
	for rows.Next() {
		var bp models.BookProgress
		if err = rows.StructScan(&bp); err != nil {
			return nil, fmt.Errorf("failed to scan book progress: %w", err)
		}
		books = append(books, &bp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan book progress rows: %w", err)
	}
	return books, nil
}

func (r *progressRepo) GetReadDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	rows, err := r.db.QueryxContext(ctx, getReadDaysQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get read days: %w", err)
	}
	defer rows.Close()
	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err = rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan read day: %w", err)
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan read days: %w", err)
	}
	return days, nil
}

func (r *progressRepo) SaveVerse(ctx context.Context, saved *models.SavedVerse) (*models.SavedVerse, error) {
	created := &models.SavedVerse{}
	if err := r.db.QueryRowxContext(
		ctx,
		saveVerseQuery,
		saved.UserID,
		saved.BookNumber,
		saved.Chapter,
		saved.Verse,
		saved.Text,
		saved.HighlightColor,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to save verse: %w", err)
	}
	return created, nil
}

func (r *progressRepo) UnsaveVerse(ctx context.Context, userID uuid.UUID, savedID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, unsaveVerseQuery, savedID, userID)
	if err != nil {
		return fmt.Errorf("failed to unsave verse: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read unsave result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *progressRepo) ListSavedVerses(ctx context.Context, userID uuid.UUID) ([]*models.SavedVerse, error) {
	rows, err := r.db.QueryxContext(ctx, listSavedVersesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved verses: %w", err)
	}
	defer rows.Close()
	verses := make([]*models.SavedVerse, 0)
	for rows.Next() {
		var v models.SavedVerse
		if err = rows.StructScan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan saved verse: %w", err)
		}
		verses = append(verses, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan saved verses: %w", err)
	}
	return verses, nil
}
