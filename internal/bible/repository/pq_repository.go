package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scripturecast/scripture-backend/internal/bible"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type bibleRepo struct {
	db *sqlx.DB
}

func NewBibleRepo(db *sqlx.DB) bible.Repository {
	return &bibleRepo{
		db: db,
	}
}

func (b *bibleRepo) GetBooks(ctx context.Context) ([]*models.BibleBook, error) {
	rows, err := b.db.QueryxContext(ctx, getBooksQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	defer rows.Close()
	var books []*models.BibleBook
	for rows.Next() {
		var book models.BibleBook
		if err = rows.StructScan(&book); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}
	return books, nil
}

func (b *bibleRepo) GetBookByNumber(ctx context.Context, bookNumber int) (*models.BibleBook, error) {
	book := &models.BibleBook{}
	if err := b.db.QueryRowxContext(
		ctx,
		getBookByNumberQuery,
		bookNumber,
	).StructScan(book); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by number: %w", err)
	}
	return book, nil
}

func (b *bibleRepo) GetChapterVerses(ctx context.Context, bookNumber, chapter int) ([]*models.BibleVerse, error) {
	rows, err := b.db.QueryxContext(ctx, getChapterVersesQuery, bookNumber, chapter)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter verses: %w", err)
	}
	defer rows.Close()
	var verses []*models.BibleVerse
	for rows.Next() {
		var verse models.BibleVerse
		if err = rows.StructScan(&verse); err != nil {
			return nil, fmt.Errorf("failed to scan verse: %w", err)
		}
		verses = append(verses, &verse)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan verses: %w", err)
	}
	return verses, nil
}

func (b *bibleRepo) SearchVerses(ctx context.Context, query string, pq *utils.Pagination) (*models.VerseList, error) {
	var totalCount int
	if err := b.db.GetContext(
		ctx,
		&totalCount,
		getTotalVersesByTextQuery,
		query,
	); err != nil {
		return nil, fmt.Errorf("failed to get total verses count: %w", err)
	}
	if totalCount == 0 {
		return &models.VerseList{
			Verses:     make([]*models.BibleVerse, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := b.db.QueryxContext(
		ctx,
		searchVersesQuery,
		query,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search verses: %w", err)
	}
	defer rows.Close()
	verses := make([]*models.BibleVerse, 0, pq.GetSize())
	for rows.Next() {
		var verse models.BibleVerse
		if err = rows.StructScan(&verse); err != nil {
			return nil, fmt.Errorf("failed to scan verse: %w", err)
		}
		verses = append(verses, &verse)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan verses: %w", err)
	}
	return &models.VerseList{
		Verses:     verses,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (b *bibleRepo) UpsertVerses(ctx context.Context, verses []*models.BibleVerse) error {
	if len(verses) == 0 {
		return nil
	}
	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin verse upsert tx: %w", err)
	}
	defer tx.Rollback()

	for _, verse := range verses {
		if _, err = tx.NamedExecContext(ctx, upsertVerseQuery, verse); err != nil {
			return fmt.Errorf("failed to upsert verse %d:%d:%d: %w", verse.BookNumber, verse.Chapter, verse.Verse, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verse upsert tx: %w", err)
	}
	return nil
}
