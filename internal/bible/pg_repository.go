package bible

import (
	"context"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type Repository interface {
	GetBooks(ctx context.Context) ([]*models.BibleBook, error)
	// GetBookByNumber returns (nil, nil) when the book does not exist.
	GetBookByNumber(ctx context.Context, bookNumber int) (*models.BibleBook, error)
	GetChapterVerses(ctx context.Context, bookNumber, chapter int) ([]*models.BibleVerse, error)
	SearchVerses(ctx context.Context, query string, pq *utils.Pagination) (*models.VerseList, error)
	UpsertVerses(ctx context.Context, verses []*models.BibleVerse) error
}
